package handlers

import (
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/otuedon/shop-tracker/internal/form"
)

// draftSession is one open form flow. Sessions are per-user, per-draft, and
// live only in this process; closing the form drops the session. tmpImage is
// the staged upload on disk, deleted when replaced or when the session ends.
type draftSession struct {
	id       string
	ownerID  string
	ctrl     *form.Controller
	tmpImage string
}

// stageImage records path as the session's staged upload, deleting whatever
// file a previous upload left behind.
func (s *draftSession) stageImage(path string) {
	sessionsMu.Lock()
	prev := s.tmpImage
	s.tmpImage = path
	sessionsMu.Unlock()
	if prev != "" {
		os.Remove(prev)
	}
}

var (
	sessionsMu sync.Mutex
	sessions   = map[string]*draftSession{}
)

func newSession(ownerID string, ctrl *form.Controller) *draftSession {
	s := &draftSession{id: uuid.NewString(), ownerID: ownerID, ctrl: ctrl}
	sessionsMu.Lock()
	sessions[s.id] = s
	sessionsMu.Unlock()
	return s
}

func getSession(ownerID, id string) (*draftSession, bool) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	s, ok := sessions[id]
	if !ok || s.ownerID != ownerID {
		return nil, false
	}
	return s, true
}

func dropSession(id string) {
	sessionsMu.Lock()
	s, ok := sessions[id]
	delete(sessions, id)
	sessionsMu.Unlock()
	if ok && s.tmpImage != "" {
		os.Remove(s.tmpImage)
	}
}

// ClearSessions drops every open session; tests use this between cases.
func ClearSessions() {
	sessionsMu.Lock()
	dropped := sessions
	sessions = map[string]*draftSession{}
	sessionsMu.Unlock()
	for _, s := range dropped {
		if s.tmpImage != "" {
			os.Remove(s.tmpImage)
		}
	}
}

package form

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/otuedon/shop-tracker/internal/blobstore"
)

// ImageKind tells whether an image reference is still device-local or already
// durable in the object store.
type ImageKind int

const (
	// ImageLocal points at transient bytes on the device; discardable.
	ImageLocal ImageKind = iota
	// ImageRemote is a durable object-store URL.
	ImageRemote
)

// ImageRef is the two-state image union of the draft.
type ImageRef struct {
	Kind ImageKind `json:"kind"`
	URI  string    `json:"uri"`
}

func LocalImage(uri string) ImageRef  { return ImageRef{Kind: ImageLocal, URI: uri} }
func RemoteImage(url string) ImageRef { return ImageRef{Kind: ImageRemote, URI: url} }

// Opener reads the bytes behind a local URI.
type Opener func(uri string) (io.ReadCloser, error)

// Staging moves a chosen image from a local reference to the object store on
// commit, and exposes the in-flight state for the UI.
type Staging struct {
	blobs  blobstore.Store
	opener Opener
	now    func() time.Time

	mu       sync.Mutex
	inFlight bool
}

func NewStaging(blobs blobstore.Store) *Staging {
	return &Staging{blobs: blobs, opener: openLocalURI, now: time.Now}
}

// WithOpener overrides how local URIs are read; tests use this.
func (s *Staging) WithOpener(o Opener) *Staging {
	s.opener = o
	return s
}

// WithClock overrides the upload-key clock; tests use this.
func (s *Staging) WithClock(now func() time.Time) *Staging {
	s.now = now
	return s
}

// Uploading reports whether a commit is currently in flight.
func (s *Staging) Uploading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Commit promotes a local image to the object store and returns the durable
// reference. An already-remote ref is returned unchanged without touching the
// store, which is what makes retries and unchanged edit flows cheap. On
// failure the caller's ref is untouched and still local.
func (s *Staging) Commit(ctx context.Context, ref ImageRef, ownerID string) (ImageRef, error) {
	if ref.Kind == ImageRemote {
		return ref, nil
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ImageRef{}, ErrSubmitPending
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	rc, err := s.opener(ref.URI)
	if err != nil {
		return ImageRef{}, &UploadError{Cause: err}
	}
	defer rc.Close()

	key := fmt.Sprintf("product_images/%s/%d", ownerID, s.now().UnixMilli())
	url, err := s.blobs.Put(ctx, key, rc)
	if err != nil {
		return ImageRef{}, &UploadError{Cause: err}
	}
	return RemoteImage(url), nil
}

func openLocalURI(uri string) (io.ReadCloser, error) {
	return os.Open(strings.TrimPrefix(uri, "file://"))
}

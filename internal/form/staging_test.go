package form

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/otuedon/shop-tracker/internal/blobstore"
)

func stubOpener(content string) Opener {
	return func(uri string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	}
}

func TestStaging_CommitUploadsLocalImage(t *testing.T) {
	blobs := blobstore.NewInMemoryStore()
	at := time.UnixMilli(1700000000000)
	s := NewStaging(blobs).WithOpener(stubOpener("jpeg bytes")).WithClock(func() time.Time { return at })

	got, err := s.Commit(context.Background(), LocalImage("file:///tmp/pic.jpg"), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != ImageRemote {
		t.Errorf("expected remote ref, got kind %v", got.Kind)
	}

	wantKey := "product_images/user-1/1700000000000"
	if _, ok := blobs.Blobs[wantKey]; !ok {
		t.Errorf("expected blob at %q, have %v", wantKey, blobs.Blobs)
	}
	if got.URI != "https://blobs.local/"+wantKey {
		t.Errorf("unexpected url %q", got.URI)
	}
}

func TestStaging_CommitRemoteIsANoOp(t *testing.T) {
	blobs := blobstore.NewInMemoryStore()
	s := NewStaging(blobs)

	ref := RemoteImage("https://blobs.local/product_images/user-1/1")
	got, err := s.Commit(context.Background(), ref, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ref {
		t.Errorf("expected the same ref back, got %+v", got)
	}
	if blobs.PutCount != 0 {
		t.Errorf("expected no store writes, got %d", blobs.PutCount)
	}
}

func TestStaging_OpenFailureIsAnUploadError(t *testing.T) {
	s := NewStaging(blobstore.NewInMemoryStore()).WithOpener(func(string) (io.ReadCloser, error) {
		return nil, errors.New("no such file")
	})

	_, err := s.Commit(context.Background(), LocalImage("file:///gone.jpg"), "user-1")
	var ue *UploadError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UploadError, got %v", err)
	}
}

func TestStaging_StoreFailureIsAnUploadError(t *testing.T) {
	blobs := blobstore.NewInMemoryStore()
	blobs.FailWith = errors.New("connection reset")
	s := NewStaging(blobs).WithOpener(stubOpener("jpeg bytes"))

	_, err := s.Commit(context.Background(), LocalImage("file:///tmp/pic.jpg"), "user-1")
	var ue *UploadError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UploadError, got %v", err)
	}
	if s.Uploading() {
		t.Error("expected in-flight flag cleared after failure")
	}
}

func TestStaging_SecondCommitWhileInFlightGetsBusy(t *testing.T) {
	blobs := blobstore.NewInMemoryStore()
	release := make(chan struct{})
	opened := make(chan struct{})
	s := NewStaging(blobs).WithOpener(func(string) (io.ReadCloser, error) {
		close(opened)
		<-release
		return io.NopCloser(strings.NewReader("jpeg bytes")), nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := s.Commit(context.Background(), LocalImage("file:///tmp/a.jpg"), "user-1")
		done <- err
	}()

	<-opened
	if !s.Uploading() {
		t.Error("expected Uploading true while the first commit holds")
	}
	_, err := s.Commit(context.Background(), LocalImage("file:///tmp/b.jpg"), "user-1")
	if !errors.Is(err, ErrSubmitPending) {
		t.Errorf("expected ErrSubmitPending, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first commit failed: %v", err)
	}
	if s.Uploading() {
		t.Error("expected Uploading false after commit settles")
	}
}

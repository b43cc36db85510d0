package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore_Put(t *testing.T) {
	root := t.TempDir()
	s, err := NewDiskStore(root, "http://localhost:8080/media/")
	if err != nil {
		t.Fatal(err)
	}

	url, err := s.Put(context.Background(), "product_images/user-1/123", strings.NewReader("jpeg bytes"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if url != "http://localhost:8080/media/product_images/user-1/123" {
		t.Errorf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(root, "product_images", "user-1", "123"))
	if err != nil {
		t.Fatalf("blob not on disk: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("unexpected contents %q", data)
	}
}

func TestDiskStore_PutOverwrites(t *testing.T) {
	s, err := NewDiskStore(t.TempDir(), "http://localhost:8080/media")
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if _, err := s.Put(ctx, "k", strings.NewReader("one")); err != nil {
		t.Fatal(err)
	}
	url, err := s.Put(ctx, "k", strings.NewReader("two"))
	if err != nil {
		t.Fatal(err)
	}
	if url != "http://localhost:8080/media/k" {
		t.Errorf("unexpected url %q", url)
	}
}

func TestDiskStore_CancelledContext(t *testing.T) {
	s, err := NewDiskStore(t.TempDir(), "http://localhost:8080/media")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Put(ctx, "k", strings.NewReader("one")); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}

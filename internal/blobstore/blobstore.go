package blobstore

import (
	"context"
	"io"
)

// Store is the object-store port: write bytes under a key, get back a durable
// URL. Keys are slash-separated paths scoped by owner, e.g.
// product_images/<owner>/<millis>.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader) (string, error)
}

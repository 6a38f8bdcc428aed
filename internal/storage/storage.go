// Package storage holds listing photos. The local backend keeps files
// on disk and serves them back through the API, which is enough for a
// single-node deployment; Firestore-backed deployments typically point
// image URLs at an external bucket instead and skip this entirely.
package storage

import "io"

// ImageStore reads and writes listing photos by key.
type ImageStore interface {
	Save(key string, r io.Reader) error
	Open(key string) (io.ReadCloser, error)
	Delete(key string) error
	Exists(key string) (bool, int64, error)
}

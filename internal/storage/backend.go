package storage

import "io"

// Backend is the interface that wraps the basic archive operations.
type Backend interface {
	// Name returns the name of the backend implementation.
	Name() string

	// Reader returns a ReadCloser of the archived document.
	Reader(object string) (io.ReadCloser, error)
	// Writer returns a WriteCloser of the archived document.
	Writer(object string) (io.WriteCloser, error)

	// Exist returns true if the given document is archived.
	Exist(object string) bool

	// Remove deletes the given document.
	Remove(object string) error
	// Cleanup cleans useless artifacts in storage.
	Cleanup() error
}

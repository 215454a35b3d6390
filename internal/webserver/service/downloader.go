package service

import (
	"io"

	"github.com/mdouchement/treesnap/internal/model"
	"github.com/mdouchement/treesnap/internal/storage"
)

// A Downloader streams an archived snapshot document.
type Downloader interface {
	Stream() (io.ReadCloser, error)
	ContentType() string
	Size() int64
	Checksum() string
}

type snapshotDownloader struct {
	storage  storage.Backend
	snapshot *model.Snapshot
}

// NewSnapshotDownloader returns a new Downloader for the given snapshot.
func NewSnapshotDownloader(storage storage.Backend, snapshot *model.Snapshot) Downloader {
	return &snapshotDownloader{
		storage:  storage,
		snapshot: snapshot,
	}
}

func (s *snapshotDownloader) Stream() (io.ReadCloser, error) {
	return s.storage.Reader(s.snapshot.Key)
}

func (s *snapshotDownloader) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (s *snapshotDownloader) Size() int64 {
	return s.snapshot.Size
}

func (s *snapshotDownloader) Checksum() string {
	return s.snapshot.Checksum
}

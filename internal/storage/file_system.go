package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type fs struct {
	workspace string
}

// NewFileSystem returns a new File System backend.
func NewFileSystem(workspace string) Backend {
	return &fs{
		workspace: workspace,
	}
}

func (b *fs) Name() string {
	return "file_system"
}

func (b *fs) Reader(object string) (io.ReadCloser, error) {
	rc, err := os.Open(filepath.Join(b.workspace, object))
	if err != nil {
		return rc, errors.Wrap(err, "could not open file")
	}
	return rc, err
}

func (b *fs) Writer(object string) (io.WriteCloser, error) {
	b.mkdirAll(filepath.Dir(object))

	wc, err := os.Create(filepath.Join(b.workspace, object))
	if err != nil {
		return wc, errors.Wrap(err, "could not create file")
	}
	return wc, err
}

func (b *fs) Exist(object string) bool {
	_, err := os.Stat(filepath.Join(b.workspace, object))
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}
	return true // ignoring error
}

func (b *fs) Remove(object string) error {
	err := os.RemoveAll(filepath.Join(b.workspace, object))
	if err != nil {
		return errors.Wrap(err, "could not delete file")
	}
	return nil
}

func (b *fs) Cleanup() error {
	// Remove empty directories left behind by Remove.
	_, err := prune(b.workspace, true)
	return errors.Wrap(err, "cleanup")
}

func prune(dir string, root bool) (empty bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}

	empty = true
	for _, entry := range entries {
		if !entry.IsDir() {
			if strings.HasSuffix(entry.Name(), ".DS_Store") {
				continue
			}
			empty = false
			continue
		}

		subempty, err := prune(filepath.Join(dir, entry.Name()), false)
		if err != nil {
			return false, err
		}
		if !subempty {
			empty = false
		}
	}

	if empty && !root {
		return true, os.RemoveAll(dir)
	}
	return empty, nil
}

func (b *fs) mkdirAll(object string) {
	if !b.Exist(object) {
		os.MkdirAll(filepath.Join(b.workspace, object), 0755)
	}
}

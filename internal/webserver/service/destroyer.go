package service

import (
	"github.com/mdouchement/treesnap/internal/database"
	"github.com/mdouchement/treesnap/internal/model"
	"github.com/mdouchement/treesnap/internal/storage"
	"github.com/pkg/errors"
)

// A Destroyer removes an archived snapshot from storage and database.
type Destroyer interface {
	Destroy() error
}

type snapshotDestroyer struct {
	database database.Client
	storage  storage.Backend
	snapshot *model.Snapshot
}

// NewSnapshotDestroyer returns a new Destroyer for the given snapshot.
func NewSnapshotDestroyer(database database.Client, storage storage.Backend, snapshot *model.Snapshot) Destroyer {
	return &snapshotDestroyer{
		database: database,
		storage:  storage,
		snapshot: snapshot,
	}
}

func (s *snapshotDestroyer) Destroy() error {
	err := s.storage.Remove(s.snapshot.Key)
	if err != nil {
		return errors.Wrap(err, "SnapshotDestroyer storage")
	}

	err = s.database.DeleteSnapshot(s.snapshot.ID)
	return errors.Wrap(err, "SnapshotDestroyer snapshot")
}

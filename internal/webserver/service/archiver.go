package service

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"time"

	"github.com/gofrs/uuid"
	"github.com/mdouchement/treesnap/internal/database"
	"github.com/mdouchement/treesnap/internal/model"
	"github.com/mdouchement/treesnap/internal/storage"
	"github.com/mdouchement/treesnap/internal/tree"
	"github.com/pkg/errors"
)

// An Archiver generates a snapshot document and stores it.
type Archiver struct {
	database database.Client
	storage  storage.Backend
	root     string
	rules    *tree.Ruleset
	ttl      time.Duration
}

// NewArchiver returns a new Archiver.
func NewArchiver(database database.Client, storage storage.Backend, root string, rules *tree.Ruleset, ttl time.Duration) *Archiver {
	return &Archiver{
		database: database,
		storage:  storage,
		root:     root,
		rules:    rules,
		ttl:      ttl,
	}
}

// Archive renders the document, writes it to storage and records its metadata.
func (s *Archiver) Archive() (*model.Snapshot, error) {
	document, err := tree.Generate(s.root, s.rules)
	if err != nil {
		return nil, errors.Wrap(err, "Archiver generate")
	}

	key := uuid.Must(uuid.NewV4()).String() + ".txt"

	w, err := s.storage.Writer(key)
	if err != nil {
		return nil, errors.Wrap(err, "Archiver storage")
	}

	checksum := md5.New()
	n, err := io.WriteString(io.MultiWriter(w, checksum), document.String())
	if err != nil {
		w.Close()
		return nil, errors.Wrap(err, "Archiver write")
	}
	if err = w.Close(); err != nil {
		return nil, errors.Wrap(err, "Archiver write")
	}

	snapshot := &model.Snapshot{
		Root:     s.root,
		Key:      key,
		Size:     int64(n),
		Checksum: hex.EncodeToString(checksum.Sum(nil)),
		Files:    document.Files,
		Dirs:     document.Dirs,
	}
	if s.ttl > 0 {
		snapshot.TTL = time.Now().Add(s.ttl)
	}

	err = s.database.Save(snapshot)
	return snapshot, errors.Wrap(err, "Archiver save")
}

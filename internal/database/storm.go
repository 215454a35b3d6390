package database

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/json"
	"github.com/asdine/storm/v3/q"
	"github.com/gofrs/uuid"
	"github.com/mdouchement/treesnap/internal/model"
	"github.com/pkg/errors"
)

type strm struct {
	db *storm.DB
}

// StormCodec is the format used to store data in the database.
var StormCodec = storm.Codec(json.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}

	err = db.Init(&model.Snapshot{})
	return errors.Wrap(err, "could not init snapshot index")
}

// StormReIndex rebuilds the database indexes.
func StormReIndex(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}

	err = db.ReIndex(&model.Snapshot{})
	return errors.Wrap(err, "could not ReIndex snapshots")
}

// StormOpen opens the database and returns a Client.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db: db,
	}, nil
}

func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetID() == "" {
		m.SetID(uuid.Must(uuid.NewV4()).String())
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

func (c *strm) Close() error {
	return c.db.Close()
}

func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

//
// Snapshot
//

func (c *strm) AllSnapshots() ([]*model.Snapshot, error) {
	snapshots := make([]*model.Snapshot, 0)
	err := c.db.Select().OrderBy("CreatedAt").Find(&snapshots)
	if err != nil && c.IsNotFound(err) {
		return snapshots, nil
	}
	return snapshots, errors.Wrap(err, "could not get all snapshots")
}

func (c *strm) FindSnapshot(id string) (*model.Snapshot, error) {
	var snapshot model.Snapshot
	err := c.db.One("ID", id, &snapshot)
	return &snapshot, errors.Wrap(err, "could not find snapshot")
}

func (c *strm) FindSnapshotsByRoot(root string) ([]*model.Snapshot, error) {
	snapshots := make([]*model.Snapshot, 0)
	err := c.db.Select(q.Eq("Root", root)).OrderBy("CreatedAt").Find(&snapshots)
	if err != nil && c.IsNotFound(err) {
		return snapshots, nil
	}
	return snapshots, errors.Wrap(err, "could not get snapshots by root")
}

func (c *strm) LastSnapshot() (*model.Snapshot, error) {
	var snapshot model.Snapshot
	err := c.db.Select().OrderBy("CreatedAt").Reverse().First(&snapshot)
	return &snapshot, errors.Wrap(err, "could not find last snapshot")
}

func (c *strm) DeleteSnapshot(id string) error {
	err := c.db.Select(q.Eq("ID", id)).Delete(&model.Snapshot{})
	return errors.Wrap(err, "could not delete snapshot")
}

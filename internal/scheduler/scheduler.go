package scheduler

import (
	"time"

	"github.com/mdouchement/logger"
	"github.com/mdouchement/treesnap/internal/database"
	"github.com/mdouchement/treesnap/internal/storage"
	"github.com/mdouchement/treesnap/internal/webserver/service"
	"github.com/robfig/cron/v3"
)

// A Controller is an Iversion Of Control pattern used to init the scheduler package.
type Controller struct {
	Logger        logger.Logger
	Database      database.Client
	Storage       storage.Backend
	Archiver      *service.Archiver
	Specification string
	Retention     int
}

// Start lauches the scheduler asynchronously.
func Start(c Controller) {
	cron := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	log := c.Logger.WithPrefix("[scheduler]")

	_, err := cron.AddFunc(c.Specification, c.Run)
	if err != nil {
		panic(err)
	}
	log.Info("Snapshot task registred")

	cron.Start()
	log.Info("Scheduler is running")
}

// Run archives a new snapshot, removes the expired ones, applies the
// retention and cleans the storage.
func (c Controller) Run() {
	log := c.Logger.WithPrefix("[snapshot]")

	snapshot, err := c.Archiver.Archive()
	if err != nil {
		log.Error(err)
		return
	}
	log.Infof("Archived %s (%d files)", snapshot.ID, snapshot.Files)

	// Expired snapshots.
	//
	snapshots, err := c.Database.AllSnapshots()
	if err != nil {
		log.Error(err)
		return
	}

	remaining := snapshots[:0]
	for _, snapshot := range snapshots {
		if snapshot.TTL.IsZero() || snapshot.TTL.After(time.Now()) {
			remaining = append(remaining, snapshot)
			continue
		}

		err = service.NewSnapshotDestroyer(c.Database, c.Storage, snapshot).Destroy()
		if err != nil {
			log.Error(err)
			return
		}
		log.Infof("Removed expired %s", snapshot.ID)
	}

	// Retention, oldest first.
	//
	if c.Retention > 0 {
		for len(remaining) > c.Retention {
			err = service.NewSnapshotDestroyer(c.Database, c.Storage, remaining[0]).Destroy()
			if err != nil {
				log.Error(err)
				return
			}
			log.Infof("Removed %s (retention)", remaining[0].ID)
			remaining = remaining[1:]
		}
	}

	log.Info("Storage cleanup")
	err = c.Storage.Cleanup()
	if err != nil {
		log.Error(err)
		return
	}
}

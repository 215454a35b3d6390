package webserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/logger"
	"github.com/mdouchement/treesnap/internal/database"
	"github.com/mdouchement/treesnap/internal/model"
	"github.com/mdouchement/treesnap/internal/storage"
	"github.com/mdouchement/treesnap/internal/webserver/serializer"
	"github.com/mdouchement/treesnap/internal/webserver/service"
	"github.com/mdouchement/treesnap/internal/webserver/weberror"
)

type snapshot struct {
	logger   logger.Logger
	db       database.Client
	storage  storage.Backend
	archiver *service.Archiver
}

func (h *snapshot) List(c echo.Context) error {
	c.Set("handler_method", "snapshot.List")

	var snapshots []*model.Snapshot
	var err error
	if root := c.QueryParam("root"); root != "" {
		snapshots, err = h.db.FindSnapshotsByRoot(root)
	} else {
		snapshots, err = h.db.AllSnapshots()
	}
	if err != nil {
		return weberror.New(http.StatusInternalServerError, err.Error())
	}

	//

	if c.Request().Header.Get("Accept") == "text/plain" {
		return c.String(http.StatusOK, serializer.TextSnapshots(snapshots))
	}
	// "application/json"
	return c.JSON(http.StatusOK, serializer.Snapshots(snapshots))
}

func (h *snapshot) Create(c echo.Context) error {
	c.Set("handler_method", "snapshot.Create")

	snapshot, err := h.archiver.Archive()
	if err != nil {
		return weberror.New(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, serializer.Snapshot(snapshot))
}

func (h *snapshot) Last(c echo.Context) error {
	c.Set("handler_method", "snapshot.Last")

	snapshot, err := h.db.LastSnapshot()
	if err != nil {
		if h.db.IsNotFound(err) {
			return weberror.New(http.StatusNotFound, "no snapshot archived yet")
		}

		return weberror.New(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, serializer.Snapshot(snapshot))
}

func (h *snapshot) Show(c echo.Context) error {
	c.Set("handler_method", "snapshot.Show")

	snapshot, err := h.db.FindSnapshot(c.Param("snapshot"))
	if err != nil {
		if h.db.IsNotFound(err) {
			return weberror.New(http.StatusNotFound, "snapshot not found")
		}

		return weberror.New(http.StatusInternalServerError, err.Error())
	}

	//

	c.Response().Header().Set("Date", time.Now().UTC().Format(http.TimeFormat))
	c.Response().Header().Set("X-Timestamp", strconv.FormatInt(snapshot.CreatedAt.Unix(), 10))
	if c.Request().Method == http.MethodHead {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, serializer.Snapshot(snapshot))
}

func (h *snapshot) Download(c echo.Context) error {
	c.Set("handler_method", "snapshot.Download")

	snapshot, err := h.db.FindSnapshot(c.Param("snapshot"))
	if err != nil {
		if h.db.IsNotFound(err) {
			return weberror.New(http.StatusNotFound, "snapshot not found")
		}

		return weberror.New(http.StatusInternalServerError, err.Error())
	}

	//

	downloader := service.NewSnapshotDownloader(h.storage, snapshot)

	r, err := downloader.Stream()
	if err != nil {
		return weberror.New(http.StatusUnprocessableEntity, "snapshot corrupted")
	}
	defer r.Close()

	c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(downloader.Size(), 10))
	c.Response().Header().Set("Etag", downloader.Checksum())
	return c.Stream(http.StatusOK, downloader.ContentType(), r)
}

func (h *snapshot) Delete(c echo.Context) error {
	c.Set("handler_method", "snapshot.Delete")

	snapshot, err := h.db.FindSnapshot(c.Param("snapshot"))
	if err != nil {
		if h.db.IsNotFound(err) {
			return weberror.New(http.StatusNotFound, "snapshot not found")
		}

		return weberror.New(http.StatusInternalServerError, err.Error())
	}

	//

	err = service.NewSnapshotDestroyer(h.db, h.storage, snapshot).Destroy()
	if err != nil {
		return weberror.New(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

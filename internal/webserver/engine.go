package webserver

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/logger"
	"github.com/mdouchement/treesnap/internal/database"
	"github.com/mdouchement/treesnap/internal/storage"
	middlewarepkg "github.com/mdouchement/treesnap/internal/webserver/middleware"
	"github.com/mdouchement/treesnap/internal/webserver/service"
)

// A Controller is an Iversion Of Control pattern used to init the server package.
type Controller struct {
	Version  string
	Logger   logger.Logger
	Database database.Client
	Storage  storage.Backend
	Archiver *service.Archiver
	//
	Token string
}

// EchoEngine instantiates the wep server.
func EchoEngine(ctrl Controller) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.Use(middleware.Gzip())
	engine.Use(middlewarepkg.Logger(ctrl.Logger))

	engine.HTTPErrorHandler = middlewarepkg.NewHTTPErrorHandler(ctrl.Logger)

	engine.Pre(middleware.Rewrite(map[string]string{
		"/": "/version",
	}))

	//
	//
	//

	router := engine.Group("")

	// Generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	// Snapshot
	//
	auth := middlewarepkg.Authenticate(ctrl.Token)
	snapshot := snapshot{
		logger:   ctrl.Logger,
		db:       ctrl.Database,
		storage:  ctrl.Storage,
		archiver: ctrl.Archiver,
	}
	router.GET("/snapshots", snapshot.List, auth)
	router.POST("/snapshots", snapshot.Create, auth)
	router.GET("/snapshots/last", snapshot.Last, auth)
	router.HEAD("/snapshots/:snapshot", snapshot.Show, auth) // check existence
	router.GET("/snapshots/:snapshot", snapshot.Show, auth)
	router.GET("/snapshots/:snapshot/download", snapshot.Download, auth)
	router.DELETE("/snapshots/:snapshot", snapshot.Delete, auth)

	return engine
}

// PrintRoutes prints the Echo engin exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}

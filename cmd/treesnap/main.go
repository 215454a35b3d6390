package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mdouchement/logger"
	"github.com/mdouchement/treesnap/internal/config"
	"github.com/mdouchement/treesnap/internal/database"
	"github.com/mdouchement/treesnap/internal/scheduler"
	"github.com/mdouchement/treesnap/internal/storage"
	"github.com/mdouchement/treesnap/internal/tree"
	"github.com/mdouchement/treesnap/internal/webserver"
	"github.com/mdouchement/treesnap/internal/webserver/service"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const dbname = "treesnap.db"

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	binding string
	port    string
)

func main() {
	godotenv.Load()

	c := &cobra.Command{
		Use:     "treesnap",
		Short:   "Directory snapshot generator",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    cobra.ExactArgs(0),
	}
	c.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Version for treesnap",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(c.Version)
		},
	})
	c.AddCommand(initCmd)
	c.AddCommand(reindexCmd)
	c.AddCommand(generateCmd)

	serverCmd.Flags().StringVarP(&binding, "binding", "b", "0.0.0.0", "Server's binding")
	serverCmd.Flags().StringVarP(&port, "port", "p", "5000", "Server's port")
	c.AddCommand(serverCmd)

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

var (
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Init the database",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return database.StormInit(nameWithEnv("DATABASE_PATH", dbname))
		},
	}

	//

	reindexCmd = &cobra.Command{
		Use:   "reindex",
		Short: "Reindex the database",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return database.StormReIndex(nameWithEnv("DATABASE_PATH", dbname))
		},
	}

	//

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate the snapshot document once and write it to OUTPUT",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			rules := tree.NewRuleset(cfg.Private, cfg.Exclude, cfg.Hide)
			document, err := tree.Generate(cfg.Folder, rules)
			if err != nil {
				return err
			}

			backend := storage.NewFileSystem(filepath.Dir(cfg.Output))
			w, err := backend.Writer(filepath.Base(cfg.Output))
			if err != nil {
				return err
			}
			if _, err = io.WriteString(w, document.String()); err != nil {
				w.Close()
				return errors.Wrap(err, "could not write output")
			}
			if err = w.Close(); err != nil {
				return errors.Wrap(err, "could not write output")
			}

			fmt.Printf("Output written to %s\n", cfg.Output)
			return nil
		},
	}

	//

	serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Start server",
		Args:  cobra.ExactArgs(0),
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			rules := tree.NewRuleset(cfg.Private, cfg.Exclude, cfg.Hide)

			ctrl := webserver.Controller{
				Version: c.Parent().Version,
				//
				Token: envORdefault("TREESNAP_TOKEN", "tk_treesnap"),
			}

			//

			log := logrus.New()
			log.SetFormatter(&logger.LogrusTextFormatter{
				DisableColors:   false,
				ForceColors:     true,
				ForceFormatting: true,
				PrefixRE:        regexp.MustCompile(`^(\[.*?\])\s`),
				FullTimestamp:   true,
				TimestampFormat: "2006-01-02 15:04:05",
			})
			ctrl.Logger = logger.WrapLogrus(log)

			//

			db, err := database.StormOpen(nameWithEnv("DATABASE_PATH", dbname))
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()
			ctrl.Database = db

			//

			ctrl.Storage = storage.NewFileSystem(envORdefault("ARCHIVE_PATH", "archive"))
			ctrl.Archiver = service.NewArchiver(db, ctrl.Storage, cfg.Folder, rules, durationORdefault("SNAPSHOT_TTL", 0))

			//

			scheduler.Start(scheduler.Controller{
				Logger:        ctrl.Logger,
				Database:      ctrl.Database,
				Storage:       ctrl.Storage,
				Archiver:      ctrl.Archiver,
				Specification: envORdefault("SCHEDULE", "@every 5m"),
				Retention:     intORdefault("RETENTION", 10),
			})

			//

			engine := webserver.EchoEngine(ctrl)
			webserver.PrintRoutes(engine)

			listen := fmt.Sprintf("%s:%s", binding, port)
			log.Printf("Server listening on %s", listen)
			return errors.Wrap(
				engine.Start(listen),
				"could not run server",
			)
		},
	}
)

func nameWithEnv(env, name string) string {
	p := os.Getenv(env)
	if len(p) == 0 {
		return name
	}
	return filepath.Join(p, name)
}

func envORdefault(name, fallback string) string {
	p := os.Getenv(name)
	if len(p) == 0 {
		return fallback
	}
	return p
}

func intORdefault(name string, fallback int) int {
	p := os.Getenv(name)
	if len(p) == 0 {
		return fallback
	}

	v, err := strconv.Atoi(p)
	if err != nil {
		return fallback
	}
	return v
}

func durationORdefault(name string, fallback time.Duration) time.Duration {
	p := os.Getenv(name)
	if len(p) == 0 {
		return fallback
	}

	v, err := time.ParseDuration(p)
	if err != nil {
		return fallback
	}
	return v
}

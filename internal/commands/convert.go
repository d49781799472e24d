package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dastanaron/arc-bookmarks/internal/config"
	"github.com/dastanaron/arc-bookmarks/internal/exporter"
	"github.com/dastanaron/arc-bookmarks/internal/repository"
	"github.com/dastanaron/arc-bookmarks/internal/service"
)

// ConvertCommand converts the sidebar export into a bookmark HTML file
type ConvertCommand struct {
	cfg *config.Config
	out io.Writer
	now func() time.Time
}

// NewConvertCommand creates a new convert command
func NewConvertCommand(cfg *config.Config, out io.Writer) *ConvertCommand {
	return &ConvertCommand{cfg: cfg, out: out, now: time.Now}
}

// Execute runs the conversion and returns the path of the written file
func (c *ConvertCommand) Execute() (string, error) {
	fmt.Fprintln(c.out, "Reading JSON...")
	raw, err := readSidebar(c.cfg.InputPath)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(c.out, "> Found %s.\n", c.cfg.InputPath)

	fmt.Fprintln(c.out, "Converting to bookmarks...")
	svc := newConvertService(c.cfg)
	res, err := svc.Convert(raw)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", c.cfg.InputPath, err)
	}

	if res.Empty {
		fmt.Fprintln(c.out, "> No container holds both spaces and items, writing an empty bookmark file.")
	} else {
		fmt.Fprintf(c.out, "> Using container %d.\n", res.Stats.ContainerIndex)
	}
	fmt.Fprintf(c.out, "> Found %d spaces.\n", res.Stats.SpacesFound)
	fmt.Fprintf(c.out, "> Found %d bookmarks.\n", res.Stats.BookmarksFound)
	if res.Stats.ItemsDropped > 0 {
		fmt.Fprintf(c.out, "> Skipped %d items without a tab or title.\n", res.Stats.ItemsDropped)
	}
	if res.Stats.CyclesSkipped > 0 {
		fmt.Fprintf(c.out, "> Warning: skipped %d folders that contain themselves.\n", res.Stats.CyclesSkipped)
	}

	if c.cfg.Verify {
		if err := svc.Verify(res); err != nil {
			return "", err
		}
		fmt.Fprintln(c.out, "> HTML verified.")
	}

	path := exporter.OutputPath(c.cfg.OutputDir, c.cfg.OutputPrefix, c.now())
	if err := exporter.WriteFile(path, res.HTML); err != nil {
		return "", fmt.Errorf("failed to write HTML: %w", err)
	}
	fmt.Fprintf(c.out, "> HTML written to %s.\n", path)

	if c.cfg.DBPath != "" {
		if err := c.store(res); err != nil {
			return path, err
		}
	}

	fmt.Fprintln(c.out, "Done!")
	return path, nil
}

func (c *ConvertCommand) store(res *service.Result) error {
	// Ensure database directory exists
	if err := os.MkdirAll(filepath.Dir(c.cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := repository.NewSQLiteRepository(c.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repo.Close()

	stored, err := service.NewStoreService(repo).Save(res.Roots)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "> Stored %d folders, %d new and %d existing bookmarks in %s.\n",
		stored.Folders, stored.Created, stored.Updated, c.cfg.DBPath)
	return nil
}

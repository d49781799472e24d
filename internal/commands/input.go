package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dastanaron/arc-bookmarks/internal/config"
	"github.com/dastanaron/arc-bookmarks/internal/service"
	"github.com/dastanaron/arc-bookmarks/internal/sidebar"
)

// readSidebar loads the export file
func readSidebar(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: look for %q in the current directory", sidebar.ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}
	return raw, nil
}

func newConvertService(cfg *config.Config) *service.ConvertService {
	return service.NewConvertService(cfg.Policy).
		WithEscape(cfg.Escape).
		WithMaxDepth(cfg.MaxDepth)
}

// convert reads and converts the configured input
func convert(cfg *config.Config) (*service.ConvertService, *service.Result, error) {
	raw, err := readSidebar(cfg.InputPath)
	if err != nil {
		return nil, nil, err
	}

	svc := newConvertService(cfg)
	res, err := svc.Convert(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to convert %s: %w", cfg.InputPath, err)
	}
	return svc, res, nil
}

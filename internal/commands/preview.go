package commands

import (
	"github.com/dastanaron/arc-bookmarks/internal/config"
	"github.com/dastanaron/arc-bookmarks/internal/ui"
)

// PreviewCommand shows the converted bookmarks in a terminal UI
type PreviewCommand struct {
	cfg *config.Config
}

// NewPreviewCommand creates a new preview command
func NewPreviewCommand(cfg *config.Config) *PreviewCommand {
	return &PreviewCommand{cfg: cfg}
}

// Execute converts the export and opens the tree browser
func (c *PreviewCommand) Execute() error {
	_, res, err := convert(c.cfg)
	if err != nil {
		return err
	}
	return ui.NewApp(res.Roots, res.Stats).Run()
}

package commands

import (
	"fmt"
	"io"

	"github.com/dastanaron/arc-bookmarks/internal/config"
	"github.com/dastanaron/arc-bookmarks/internal/models"
)

// SpacesCommand lists the spaces found in the export
type SpacesCommand struct {
	cfg *config.Config
	out io.Writer
}

// NewSpacesCommand creates a new spaces command
func NewSpacesCommand(cfg *config.Config, out io.Writer) *SpacesCommand {
	return &SpacesCommand{cfg: cfg, out: out}
}

// Execute prints pinned and unpinned spaces with their container ids
func (c *SpacesCommand) Execute() error {
	_, res, err := convert(c.cfg)
	if err != nil {
		return err
	}
	if res.Empty {
		fmt.Fprintln(c.out, "No container holds both spaces and items.")
		return nil
	}

	fmt.Fprintf(c.out, "Container %d, %d spaces\n", res.Stats.ContainerIndex, res.Stats.SpacesFound)
	printSpaces(c.out, "Pinned", res.Spaces.Pinned)
	printSpaces(c.out, "Unpinned", res.Spaces.Unpinned)
	return nil
}

func printSpaces(out io.Writer, label string, m *models.OrderedMap) {
	fmt.Fprintf(out, "%s (%d):\n", label, m.Len())
	m.Each(func(id, title string) bool {
		fmt.Fprintf(out, "  %s\t%s\n", title, id)
		return true
	})
}

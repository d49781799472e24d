package hierarchy

import (
	"github.com/dastanaron/arc-bookmarks/internal/models"
	"github.com/dastanaron/arc-bookmarks/internal/sidebar"
)

// Builder reconstructs the folder tree from the flat items list
type Builder struct {
	// MaxDepth limits folder nesting below a space; 0 means unlimited.
	MaxDepth int
}

// NewBuilder creates a builder without a depth limit
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns one root folder per pinned space, in pinned order.
// Items already on the current descent path are not entered again, so
// cyclic parentID chains terminate; each such repeat is counted.
func (b *Builder) Build(pinned *models.OrderedMap, items *sidebar.ItemIndex) ([]models.Node, models.Stats) {
	var stats models.Stats
	roots := make([]models.Node, 0, pinned.Len())

	pinned.Each(func(containerID, spaceName string) bool {
		path := map[string]bool{containerID: true}
		children := b.children(containerID, items, path, 1, &stats)
		roots = append(roots, models.NewFolder(spaceName, children))
		return true
	})
	return roots, stats
}

func (b *Builder) children(parentID string, items *sidebar.ItemIndex, path map[string]bool, depth int, stats *models.Stats) []models.Node {
	nodes := []models.Node{}
	for _, it := range items.Children(parentID) {
		switch {
		case it.Tab != nil:
			nodes = append(nodes, models.NewBookmark(bookmarkTitle(it), it.Tab.SavedURL))
			stats.BookmarksFound++
		case it.HasTitle:
			if path[it.ID] {
				stats.CyclesSkipped++
				continue
			}
			folder := models.NewFolder(it.Title, []models.Node{})
			stats.FoldersFound++
			// past MaxDepth the folder is kept but left empty
			if b.MaxDepth <= 0 || depth < b.MaxDepth {
				path[it.ID] = true
				folder.Children = b.children(it.ID, items, path, depth+1, stats)
				delete(path, it.ID)
			}
			nodes = append(nodes, folder)
		default:
			stats.ItemsDropped++
		}
	}
	return nodes
}

func bookmarkTitle(it sidebar.Item) string {
	if it.Title != "" {
		return it.Title
	}
	return it.Tab.SavedTitle
}

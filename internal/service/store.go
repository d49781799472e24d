package service

import (
	"fmt"

	"github.com/dastanaron/arc-bookmarks/internal/models"
	"github.com/dastanaron/arc-bookmarks/internal/repository"
)

// StoreService loads converted trees into a bookmark database
type StoreService struct {
	repo repository.Repository
}

// NewStoreService creates a new store service
func NewStoreService(repo repository.Repository) *StoreService {
	return &StoreService{repo: repo}
}

// StoreResult counts what Save did
type StoreResult struct {
	Folders int
	Created int
	Updated int
}

// Save writes roots into the database. Folders are matched by name and
// parent, bookmarks by URL within their folder, so saving the same tree
// twice changes nothing. The same matching merges siblings: bookmarks
// sharing a URL in one folder end up as a single row titled after the
// last of them, and sibling folders sharing a name share one row and
// their children. The database can therefore hold fewer rows than the tree
// has nodes; Folders counts visited folder nodes, not rows.
func (s *StoreService) Save(roots []models.Node) (StoreResult, error) {
	var out StoreResult
	for _, root := range roots {
		if err := s.save(root, nil, &out); err != nil {
			return out, err
		}
	}
	return out, nil
}

func (s *StoreService) save(n models.Node, parentID *int, out *StoreResult) error {
	if !n.IsFolder() {
		b := models.Bookmark{Title: n.Title, URL: n.URL, FolderID: parentID}
		created, err := s.repo.Bookmarks().Upsert(&b)
		if err != nil {
			return fmt.Errorf("failed to store bookmark '%s': %w", n.Title, err)
		}
		if created {
			out.Created++
		} else {
			out.Updated++
		}
		return nil
	}

	folder, err := s.repo.Folders().Upsert(n.Title, parentID)
	if err != nil {
		return fmt.Errorf("failed to store folder '%s': %w", n.Title, err)
	}
	out.Folders++

	id := folder.ID
	for _, child := range n.Children {
		if err := s.save(child, &id, out); err != nil {
			return err
		}
	}
	return nil
}

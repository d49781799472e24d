package service

import (
	"testing"

	"github.com/dastanaron/arc-bookmarks/internal/models"
	"github.com/dastanaron/arc-bookmarks/internal/repository"
)

func setupTestRepo(t *testing.T) *repository.SQLiteRepository {
	t.Helper()
	repo, err := repository.NewSQLiteRepository(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestStoreSave(t *testing.T) {
	repo := setupTestRepo(t)
	store := NewStoreService(repo)

	roots := []models.Node{
		models.NewFolder("Work", []models.Node{
			models.NewBookmark("Example", "https://example.com"),
			models.NewFolder("Sub", []models.Node{
				models.NewBookmark("Example", "https://example.com"),
			}),
		}),
	}

	got, err := store.Save(roots)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got.Folders != 2 || got.Created != 2 || got.Updated != 0 {
		t.Fatalf("Unexpected first save result: %+v", got)
	}

	folders, err := repo.Folders().List()
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 2 {
		t.Fatalf("Expected 2 folders, got %d", len(folders))
	}
	if folders[0].Name != "Work" || folders[0].ParentID != nil {
		t.Fatalf("Expected root folder 'Work', got %+v", folders[0])
	}
	if folders[1].ParentID == nil || *folders[1].ParentID != folders[0].ID {
		t.Fatalf("Expected 'Sub' under 'Work', got %+v", folders[1])
	}

	bookmarks, err := repo.Bookmarks().List()
	if err != nil {
		t.Fatal(err)
	}
	if len(bookmarks) != 2 {
		t.Fatalf("Expected 2 bookmarks, got %d", len(bookmarks))
	}
	if *bookmarks[0].FolderID != folders[0].ID || *bookmarks[1].FolderID != folders[1].ID {
		t.Fatalf("Bookmarks stored in wrong folders: %+v", bookmarks)
	}
}

func TestStoreSaveTwice(t *testing.T) {
	repo := setupTestRepo(t)
	store := NewStoreService(repo)

	roots := []models.Node{
		models.NewFolder("Work", []models.Node{
			models.NewBookmark("Example", "https://example.com"),
		}),
	}
	if _, err := store.Save(roots); err != nil {
		t.Fatal(err)
	}

	roots[0].Children[0].Title = "Renamed"
	got, err := store.Save(roots)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got.Created != 0 || got.Updated != 1 {
		t.Fatalf("Unexpected second save result: %+v", got)
	}

	folders, _ := repo.Folders().List()
	bookmarks, _ := repo.Bookmarks().List()
	if len(folders) != 1 || len(bookmarks) != 1 {
		t.Fatalf("Expected 1 folder and 1 bookmark, got %d and %d", len(folders), len(bookmarks))
	}
	if bookmarks[0].Title != "Renamed" {
		t.Fatalf("Expected title 'Renamed', got '%s'", bookmarks[0].Title)
	}
}

func TestStoreSaveMergesSiblings(t *testing.T) {
	repo := setupTestRepo(t)
	store := NewStoreService(repo)

	roots := []models.Node{
		models.NewFolder("Work", []models.Node{
			models.NewBookmark("First", "https://example.com"),
			models.NewBookmark("Second", "https://example.com"),
		}),
		models.NewFolder("Work", []models.Node{
			models.NewBookmark("Other", "https://other.com"),
		}),
	}

	got, err := store.Save(roots)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got.Folders != 2 || got.Created != 2 || got.Updated != 1 {
		t.Fatalf("Unexpected save result: %+v", got)
	}

	folders, _ := repo.Folders().List()
	if len(folders) != 1 {
		t.Fatalf("Expected sibling folders merged into 1, got %d", len(folders))
	}

	bookmarks, _ := repo.Bookmarks().List()
	if len(bookmarks) != 2 {
		t.Fatalf("Expected 2 bookmarks, got %d", len(bookmarks))
	}
	if bookmarks[0].URL != "https://example.com" || bookmarks[0].Title != "Second" {
		t.Fatalf("Expected merged bookmark titled 'Second', got %+v", bookmarks[0])
	}
	for _, b := range bookmarks {
		if b.FolderID == nil || *b.FolderID != folders[0].ID {
			t.Fatalf("Expected bookmark in folder %d, got %+v", folders[0].ID, b)
		}
	}
}

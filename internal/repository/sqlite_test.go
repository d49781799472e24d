package repository

import (
	"path/filepath"
	"testing"

	"github.com/dastanaron/arc-bookmarks/internal/models"
)

func TestFolderUpsert(t *testing.T) {
	repo, err := NewSQLiteRepository(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()

	work, err := repo.Folders().Upsert("Work", nil)
	if err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}
	again, err := repo.Folders().Upsert("Work", nil)
	if err != nil {
		t.Fatalf("Failed to upsert folder: %v", err)
	}
	if again.ID != work.ID {
		t.Fatalf("Expected existing folder %d, got %d", work.ID, again.ID)
	}

	nested, err := repo.Folders().Upsert("Work", &work.ID)
	if err != nil {
		t.Fatal(err)
	}
	if nested.ID == work.ID {
		t.Fatal("Expected a separate folder under a different parent")
	}
}

func TestBookmarkUpsertAndGetByURL(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "bookmarks.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()

	folder, err := repo.Folders().Create("Work", nil)
	if err != nil {
		t.Fatal(err)
	}

	b := models.Bookmark{Title: "Example", URL: "https://example.com", FolderID: &folder.ID}
	created, err := repo.Bookmarks().Upsert(&b)
	if err != nil || !created {
		t.Fatalf("Expected create, got created=%v err=%v", created, err)
	}

	found, err := repo.Bookmarks().GetByURL("https://example.com", &folder.ID)
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.ID != b.ID {
		t.Fatalf("Expected bookmark %d, got %+v", b.ID, found)
	}

	missing, err := repo.Bookmarks().GetByURL("https://example.com", nil)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("Expected no root-level bookmark, got %+v", missing)
	}

	b2 := models.Bookmark{Title: "Example 2", URL: "https://example.com", FolderID: &folder.ID}
	created, err = repo.Bookmarks().Upsert(&b2)
	if err != nil || created {
		t.Fatalf("Expected update, got created=%v err=%v", created, err)
	}
	if b2.ID != b.ID {
		t.Fatalf("Expected ID %d, got %d", b.ID, b2.ID)
	}
}

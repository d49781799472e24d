package repository

import "github.com/dastanaron/arc-bookmarks/internal/models"

// BookmarkRepository defines operations for bookmarks
type BookmarkRepository interface {
	List() ([]models.Bookmark, error)
	GetByURL(url string, folderID *int) (*models.Bookmark, error)
	Create(b *models.Bookmark) error
	// Upsert creates the bookmark unless one with the same URL already
	// exists in the same folder, in which case its title is updated.
	// Returns true if created, false if updated.
	Upsert(b *models.Bookmark) (bool, error)
}

// FolderRepository defines operations for folders
type FolderRepository interface {
	List() ([]models.Folder, error)
	Create(name string, parentID *int) (*models.Folder, error)
	Upsert(name string, parentID *int) (*models.Folder, error)
}

// Repository combines all repositories
type Repository interface {
	Bookmarks() BookmarkRepository
	Folders() FolderRepository
	Close() error
}

package store

import (
	"context"

	"github.com/harborview/lens/internal/model"
)

// Store defines the persistence interface for the saved-search service.
// Saved searches are owned by lens; projects and users belong to the host
// tracker app and are read-only here.
type Store interface {
	// Saved-search CRUD
	CreateSavedSearch(ctx context.Context, search *model.SavedSearch) error
	GetSavedSearch(ctx context.Context, id string) (*model.SavedSearch, error)
	ListSavedSearches(ctx context.Context) ([]*model.SavedSearch, error)
	UpdateSavedSearch(ctx context.Context, search *model.SavedSearch) error
	DeleteSavedSearch(ctx context.Context, id string) error

	// Candidate records (full scan; no server-side pagination)
	GetProjects(ctx context.Context) ([]*model.Project, error)

	// User lookup for role checks and owner-username enrichment
	GetUser(ctx context.Context, id string) (*model.User, error)

	// Lifecycle
	Close() error
}

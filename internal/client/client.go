// Package client provides a transport-agnostic interface for the lens
// service and an HTTP/JSON implementation that talks to its REST API.
package client

import (
	"context"
	"encoding/json"

	"github.com/harborview/lens/internal/model"
)

// LensClient is the interface that all lens CLI commands use to communicate
// with the saved-search service.
type LensClient interface {
	// Saved-search CRUD
	CreateSavedSearch(ctx context.Context, req *SaveSearchRequest) (*model.SavedSearch, error)
	GetSavedSearch(ctx context.Context, id string) (*model.SavedSearch, error)
	ListSavedSearches(ctx context.Context) (*ListSavedSearchesResponse, error)
	UpdateSavedSearch(ctx context.Context, id string, req *SaveSearchRequest) (*model.SavedSearch, error)
	DeleteSavedSearch(ctx context.Context, id string) error

	// Execution
	ExecuteSearch(ctx context.Context, id string) ([]model.SearchResult, error)

	// Health
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}

// SaveSearchRequest is the body for create and update calls. For updates,
// zero-valued fields are left unchanged by the server.
type SaveSearchRequest struct {
	Name       string          `json:"name,omitempty"`
	Visibility string          `json:"visibility,omitempty"`
	Filters    json.RawMessage `json:"filters,omitempty"`
}

// ListSavedSearchesResponse is the payload of the listing endpoint.
type ListSavedSearchesResponse struct {
	Searches []*model.SavedSearch `json:"searches"`
	Total    int                  `json:"total"`
}

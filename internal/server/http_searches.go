package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/harborview/lens/internal/events"
	"github.com/harborview/lens/internal/idgen"
	"github.com/harborview/lens/internal/model"
	"github.com/harborview/lens/internal/search"
)

// savedSearchInput is the request body for create and update.
type savedSearchInput struct {
	Name       string          `json:"name"`
	Visibility string          `json:"visibility"`
	Filters    json.RawMessage `json:"filters"`
}

// handleListSavedSearches handles GET /api/saved-searches.
// The result is filtered by per-record visibility for the acting principal;
// the principal id comes from the auth proxy header, with the userId query
// parameter as fallback.
func (s *SearchServer) handleListSavedSearches(w http.ResponseWriter, r *http.Request) {
	principal := principalID(r)
	if principal == "" {
		principal = r.URL.Query().Get("userId")
	}
	role := s.principalRole(r.Context(), principal)

	searches, err := s.store.ListSavedSearches(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list saved searches")
		return
	}

	visible := search.VisibleTo(searches, principal, role)

	writeJSON(w, http.StatusOK, map[string]any{
		"searches": visible,
		"total":    len(visible),
	})
}

// handleGetSavedSearch handles GET /api/saved-searches/{id}.
// No visibility filtering is applied on single reads; callers are expected
// to hold an id they are authorized for.
func (s *SearchServer) handleGetSavedSearch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	saved, err := s.store.GetSavedSearch(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "saved search not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get saved search")
		return
	}
	if saved == nil {
		writeError(w, http.StatusNotFound, "saved search not found")
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// handleCreateSavedSearch handles POST /api/saved-searches.
// created_by is always the acting principal; it cannot be spoofed by the body.
func (s *SearchServer) handleCreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	principal := principalID(r)
	if principal == "" {
		writeError(w, http.StatusUnauthorized, "missing principal")
		return
	}

	var in savedSearchInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	saved, err := s.createSavedSearch(r.Context(), principal, in)
	if err != nil {
		var ie inputError
		if errors.As(err, &ie) {
			writeError(w, http.StatusBadRequest, ie.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	s.publish(r.Context(), events.TopicSearchCreated, events.SearchCreated{Search: saved})

	writeJSON(w, http.StatusCreated, saved)
}

func (s *SearchServer) createSavedSearch(ctx context.Context, principal string, in savedSearchInput) (*model.SavedSearch, error) {
	if in.Name == "" {
		return nil, inputError("name is required")
	}

	visibility := model.Visibility(in.Visibility)
	if in.Visibility == "" {
		visibility = model.VisibilityPrivate
	}
	if !visibility.IsValid() {
		return nil, inputError("invalid visibility: " + in.Visibility)
	}

	// Reject malformed filter documents at save time rather than discovering
	// them on every execution.
	if _, err := model.ParseFilterDocument(in.Filters); err != nil {
		return nil, inputError(err.Error())
	}

	id, err := idgen.Generate()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	saved := &model.SavedSearch{
		ID:         id,
		Name:       in.Name,
		CreatedBy:  principal,
		Visibility: visibility,
		Filters:    in.Filters,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.CreateSavedSearch(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// handleUpdateSavedSearch handles PUT /api/saved-searches/{id}.
// Only the creator or an admin may mutate a saved search.
func (s *SearchServer) handleUpdateSavedSearch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	principal := principalID(r)
	saved, ok := s.authorizeMutation(w, r, id, principal)
	if !ok {
		return
	}

	var in savedSearchInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if in.Name != "" {
		saved.Name = in.Name
	}
	if in.Visibility != "" {
		visibility := model.Visibility(in.Visibility)
		if !visibility.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid visibility: "+in.Visibility)
			return
		}
		saved.Visibility = visibility
	}
	if in.Filters != nil {
		if _, err := model.ParseFilterDocument(in.Filters); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		saved.Filters = in.Filters
	}
	saved.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateSavedSearch(r.Context(), saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "saved search not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update saved search")
		return
	}

	s.publish(r.Context(), events.TopicSearchUpdated, events.SearchUpdated{Search: saved})

	writeJSON(w, http.StatusOK, saved)
}

// handleDeleteSavedSearch handles DELETE /api/saved-searches/{id}.
// Only the creator or an admin may delete a saved search.
func (s *SearchServer) handleDeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	principal := principalID(r)
	if _, ok := s.authorizeMutation(w, r, id, principal); !ok {
		return
	}

	if err := s.store.DeleteSavedSearch(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "saved search not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete saved search")
		return
	}

	s.publish(r.Context(), events.TopicSearchDeleted, events.SearchDeleted{SearchID: id, DeletedBy: principal})

	w.WriteHeader(http.StatusNoContent)
}

// authorizeMutation loads the saved search and verifies the principal is its
// creator or an admin. On failure it writes the error response and returns
// ok=false.
func (s *SearchServer) authorizeMutation(w http.ResponseWriter, r *http.Request, id, principal string) (*model.SavedSearch, bool) {
	saved, err := s.store.GetSavedSearch(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "saved search not found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get saved search")
		return nil, false
	}
	if saved == nil {
		writeError(w, http.StatusNotFound, "saved search not found")
		return nil, false
	}

	if saved.CreatedBy != principal && s.principalRole(r.Context(), principal) != model.RoleAdmin {
		writeError(w, http.StatusForbidden, "only the creator or an admin may modify this search")
		return nil, false
	}
	return saved, true
}

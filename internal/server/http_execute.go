package server

import (
	"errors"
	"net/http"

	"github.com/harborview/lens/internal/events"
	"github.com/harborview/lens/internal/search"
)

// handleExecuteSearch handles GET /api/search/execute/{id}.
// It runs the saved search for the acting principal and returns the result
// records as a JSON array. Execution is not owner-gated; visibility applies
// to listing, not running.
func (s *SearchServer) handleExecuteSearch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	principal := principalID(r)

	results, err := s.executor.Execute(r.Context(), id, principal)
	if err != nil {
		if errors.Is(err, search.ErrNotFound) {
			writeError(w, http.StatusNotFound, "saved search not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.publish(r.Context(), events.TopicSearchExecuted, events.SearchExecuted{
		SearchID:    id,
		ExecutedBy:  principal,
		ResultCount: len(results),
	})

	writeJSON(w, http.StatusOK, results)
}

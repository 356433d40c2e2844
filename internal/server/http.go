package server

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// principalHeader carries the authenticated principal's id, set by the
// tracker's auth proxy in front of this service. Session authentication
// itself is out of scope here.
const principalHeader = "X-Lens-User"

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /api/health) must include
// a valid Authorization: Bearer <token> header.
func (s *SearchServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/saved-searches", s.handleListSavedSearches)
	mux.HandleFunc("POST /api/saved-searches", s.handleCreateSavedSearch)
	mux.HandleFunc("GET /api/saved-searches/{id}", s.handleGetSavedSearch)
	mux.HandleFunc("PUT /api/saved-searches/{id}", s.handleUpdateSavedSearch)
	mux.HandleFunc("DELETE /api/saved-searches/{id}", s.handleDeleteSavedSearch)
	mux.HandleFunc("GET /api/search/execute/{id}", s.handleExecuteSearch)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return AuthMiddleware(authToken, mux)
}

// handleHealth handles GET /api/health.
func (s *SearchServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// principalID extracts the acting principal's id from the request.
func principalID(r *http.Request) string {
	return r.Header.Get(principalHeader)
}

// AuthMiddleware wraps an http.Handler and checks the Authorization header for
// a valid Bearer token. When token is empty, auth is disabled and all requests
// pass through. GET /api/health is always exempt.
func AuthMiddleware(token string, next http.Handler) http.Handler {
	if token == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Exempt health check.
		if r.Method == http.MethodGet && r.URL.Path == "/api/health" {
			next.ServeHTTP(w, r)
			return
		}

		auth := r.Header.Get("Authorization")
		if auth == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		if !strings.HasPrefix(auth, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "invalid authorization scheme")
			return
		}

		provided := strings.TrimPrefix(auth, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

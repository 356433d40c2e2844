package server

import (
	"context"
	"log/slog"

	"github.com/harborview/lens/internal/events"
	"github.com/harborview/lens/internal/model"
	"github.com/harborview/lens/internal/search"
	"github.com/harborview/lens/internal/store"
)

// SearchServer serves the saved-search HTTP API.
type SearchServer struct {
	store     store.Store
	publisher events.Publisher
	executor  *search.Executor
}

// NewSearchServer returns a SearchServer backed by the given store and publisher.
func NewSearchServer(s store.Store, p events.Publisher) *SearchServer {
	return &SearchServer{
		store:     s,
		publisher: p,
		executor:  search.NewExecutor(s),
	}
}

// publish emits an event to the publisher. Best-effort; failures are logged
// but never block the caller.
func (s *SearchServer) publish(ctx context.Context, topic string, event any) {
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
}

// inputError indicates invalid user input; the HTTP layer maps it to 400.
type inputError string

func (e inputError) Error() string { return string(e) }

// principalRole looks up the acting principal's role. Unknown principals get
// the lowest-privilege role so visibility filtering stays conservative.
func (s *SearchServer) principalRole(ctx context.Context, principalID string) model.Role {
	if principalID == "" {
		return model.RoleViewer
	}
	u, err := s.store.GetUser(ctx, principalID)
	if err != nil || u == nil {
		return model.RoleViewer
	}
	if !u.Role.IsValid() {
		return model.RoleViewer
	}
	return u.Role
}

// Package events defines the saved-search lifecycle events lens publishes
// for the tracker's activity feed, and the NATS-backed publisher.
package events

import (
	"context"

	"github.com/harborview/lens/internal/model"
)

// Event topic constants
const (
	TopicSearchCreated  = "lens.search.created"
	TopicSearchUpdated  = "lens.search.updated"
	TopicSearchDeleted  = "lens.search.deleted"
	TopicSearchExecuted = "lens.search.executed"
)

// Event types

type SearchCreated struct {
	Search *model.SavedSearch `json:"search"`
}

type SearchUpdated struct {
	Search *model.SavedSearch `json:"search"`
}

type SearchDeleted struct {
	SearchID  string `json:"search_id"`
	DeletedBy string `json:"deleted_by,omitempty"`
}

type SearchExecuted struct {
	SearchID    string `json:"search_id"`
	ExecutedBy  string `json:"executed_by,omitempty"`
	ResultCount int    `json:"result_count"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

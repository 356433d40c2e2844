package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Visibility is the sharing policy of a saved search.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityTeam    Visibility = "team"
	// VisibilityShared is reserved for an explicit share-list feature.
	// Until that lands it behaves exactly like private.
	VisibilityShared Visibility = "shared"
	VisibilityPublic Visibility = "public"
)

// String returns the string representation of the visibility.
func (v Visibility) String() string {
	return string(v)
}

// IsValid checks whether the visibility is a known value.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPrivate, VisibilityTeam, VisibilityShared, VisibilityPublic:
		return true
	}
	return false
}

// SavedSearch is a persisted, named filter definition with an owner and a
// visibility policy. Filters holds the serialized filter document; parse it
// with ParseFilterDocument before use.
type SavedSearch struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CreatedBy  string          `json:"created_by"`
	Visibility Visibility      `json:"visibility"`
	Filters    json.RawMessage `json:"filters,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// FilterClause is one field/operator/value condition within a filter group.
// When SmartValue is set it takes precedence over Value at resolution time.
type FilterClause struct {
	Field      string `json:"field"`
	Operator   string `json:"operator"`
	Value      string `json:"value"`
	SmartValue string `json:"smartValue,omitempty"`
	Visible    bool   `json:"visible"`
}

// FilterDocument is the typed form of a saved search's stored filter JSON:
// one ordered clause list per entity type. Clause order is significant only
// for display; evaluation treats each group as an unordered AND-conjunction.
type FilterDocument struct {
	ProjectFilters   []FilterClause `json:"projectFilters,omitempty"`
	TaskFilters      []FilterClause `json:"taskFilters,omitempty"`
	FileFilters      []FilterClause `json:"fileFilters,omitempty"`
	AttributeFilters []FilterClause `json:"attributeFilters,omitempty"`
}

// ParseFilterDocument deserializes a stored filter document. A nil or empty
// raw value yields an empty document (a saved search without filters is
// legal); malformed JSON is an error, never silently treated as "no filters".
func ParseFilterDocument(raw json.RawMessage) (*FilterDocument, error) {
	doc := &FilterDocument{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("parse filter document: %w", err)
	}
	return doc, nil
}

// SearchResult is one matched record from a search execution. Metadata maps
// user-facing field names to display values for clauses marked visible.
// Results are rebuilt on every execution and never persisted.
type SearchResult struct {
	Type        string            `json:"type"`
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata"`
}

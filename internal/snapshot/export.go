package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/harborview/lens/internal/store"
)

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version     string    `json:"version"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	SearchCount int       `json:"search_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ExportJSONL writes all saved searches from the store as JSONL to w,
// sorted by ID for stable diffs between snapshots.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	searches, err := s.ListSavedSearches(ctx)
	if err != nil {
		return fmt.Errorf("list saved searches: %w", err)
	}

	sort.Slice(searches, func(i, j int) bool {
		return searches[i].ID < searches[j].ID
	})

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:     "1",
		Type:        "header",
		Timestamp:   time.Now().UTC(),
		SearchCount: len(searches),
	}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, search := range searches {
		if err := enc.Encode(record{Type: "saved_search", Data: search}); err != nil {
			return fmt.Errorf("write search %s: %w", search.ID, err)
		}
	}

	return nil
}

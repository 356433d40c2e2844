package search

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/harborview/lens/internal/model"
	"github.com/harborview/lens/internal/store"
)

// TypeProject tags project results. Task and file entity types are accepted
// in stored filter documents but have no data source wired up yet.
const (
	TypeProject = "project"
)

// ErrNotFound is returned by Execute when the saved search id does not exist.
var ErrNotFound = errors.New("saved search not found")

// Executor runs saved searches against the record store.
type Executor struct {
	store store.Store
	now   func() time.Time
}

// NewExecutor returns an Executor backed by the given store.
func NewExecutor(s store.Store) *Executor {
	return &Executor{store: s, now: time.Now}
}

// Execute loads the saved search, resolves each clause's smart value for the
// acting principal, matches every candidate record of each filtered entity
// type, and returns the tagged results. Results across entity types are
// concatenated; no ranking or deduplication is applied.
//
// A missing search returns ErrNotFound and a malformed stored filter
// document is a fatal error; degraded clauses (unknown tokens or operators,
// missing date fields) never abort the run.
func (e *Executor) Execute(ctx context.Context, searchID, principalID string) ([]model.SearchResult, error) {
	saved, err := e.store.GetSavedSearch(ctx, searchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get saved search: %w", err)
	}
	if saved == nil {
		return nil, ErrNotFound
	}

	doc, err := model.ParseFilterDocument(saved.Filters)
	if err != nil {
		return nil, err
	}

	now := e.now()
	results := []model.SearchResult{}

	// An entity type with no filter group, or an empty one, contributes
	// zero results; only within a non-empty group is an empty clause list
	// vacuously true.
	if len(doc.ProjectFilters) > 0 {
		projectResults, err := e.executeProjects(ctx, doc.ProjectFilters, principalID, now)
		if err != nil {
			return nil, err
		}
		results = append(results, projectResults...)
	}

	// Task, file, and attribute groups are stored but not executed: those
	// entity types have no candidate source in this service yet.
	if len(doc.TaskFilters) > 0 {
		slog.Debug("task filter execution not implemented, skipping group", "search", saved.ID)
	}
	if len(doc.FileFilters) > 0 {
		slog.Debug("file filter execution not implemented, skipping group", "search", saved.ID)
	}
	if len(doc.AttributeFilters) > 0 {
		slog.Debug("attribute filter execution not implemented, skipping group", "search", saved.ID)
	}

	return results, nil
}

func (e *Executor) executeProjects(ctx context.Context, clauses []model.FilterClause, principalID string, now time.Time) ([]model.SearchResult, error) {
	// Resolve once per clause; resolution is pure so results are stable
	// across the whole candidate scan.
	resolved := make([]ResolvedValue, len(clauses))
	for i, c := range clauses {
		token := c.Value
		if c.SmartValue != "" {
			token = c.SmartValue
		}
		resolved[i] = Resolve(token, principalID, now)
	}

	projects, err := e.store.GetProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	// Owner-username lookups are memoized per execution; results merge by
	// record identity so lookup order does not matter.
	usernames := make(map[string]string)

	var results []model.SearchResult
	for _, p := range projects {
		rec := projectRecord(p)
		if !MatchesAll(clauses, rec, resolved) {
			continue
		}

		meta := make(map[string]string)
		for _, c := range clauses {
			if !c.Visible {
				continue
			}
			attr := AttrFor(c.Field)
			val := rec[attr]
			if attr == "owner_id" && val != "" {
				val, err = e.username(ctx, usernames, val)
				if err != nil {
					return nil, err
				}
			}
			meta[c.Field] = val
		}

		results = append(results, model.SearchResult{
			Type:        TypeProject,
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Metadata:    meta,
		})
	}
	return results, nil
}

// username resolves an owner id to a display name, falling back to the raw
// id when the user record no longer exists.
func (e *Executor) username(ctx context.Context, cache map[string]string, id string) (string, error) {
	if name, ok := cache[id]; ok {
		return name, nil
	}
	name := id
	u, err := e.store.GetUser(ctx, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get user %s: %w", id, err)
	}
	if u != nil {
		name = u.Username
	}
	cache[id] = name
	return name, nil
}

// projectRecord flattens a project into attribute name -> value form for
// the evaluator.
func projectRecord(p *model.Project) Record {
	rec := Record{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"status":      p.Status,
		"owner_id":    p.OwnerID,
		"team_size":   strconv.Itoa(p.TeamSize),
		"created_at":  p.CreatedAt.Format(time.RFC3339),
		"updated_at":  p.UpdatedAt.Format(time.RFC3339),
	}
	if p.StartDate != nil {
		rec["start_date"] = p.StartDate.Format(time.RFC3339)
	}
	if p.DueDate != nil {
		rec["due_date"] = p.DueDate.Format(time.RFC3339)
	}
	return rec
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/harborview/lens/internal/model"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
	return db, mock
}

func searchRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "created_by", "visibility", "filters", "created_at", "updated_at"})
}

func TestQueryCreateSavedSearch(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now().UTC()
	filters := json.RawMessage(`{"projectFilters":[]}`)
	mock.ExpectExec(`INSERT INTO saved_searches`).
		WithArgs("ls-1", "my projects", "alice", "private", []byte(filters), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := queryCreateSavedSearch(context.Background(), db, &model.SavedSearch{
		ID:         "ls-1",
		Name:       "my projects",
		CreatedBy:  "alice",
		Visibility: model.VisibilityPrivate,
		Filters:    filters,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("queryCreateSavedSearch: %v", err)
	}
}

func TestQueryCreateSavedSearch_NilFiltersStoredAsNull(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now().UTC()
	mock.ExpectExec(`INSERT INTO saved_searches`).
		WithArgs("ls-1", "empty", "alice", "private", nil, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := queryCreateSavedSearch(context.Background(), db, &model.SavedSearch{
		ID:         "ls-1",
		Name:       "empty",
		CreatedBy:  "alice",
		Visibility: model.VisibilityPrivate,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("queryCreateSavedSearch: %v", err)
	}
}

func TestQueryGetSavedSearch(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM saved_searches WHERE id`).
		WithArgs("ls-1").
		WillReturnRows(searchRows().AddRow("ls-1", "my projects", "alice", "team", []byte(`{"projectFilters":[]}`), now, now))

	s, err := queryGetSavedSearch(context.Background(), db, "ls-1")
	if err != nil {
		t.Fatalf("queryGetSavedSearch: %v", err)
	}
	if s.ID != "ls-1" || s.Name != "my projects" || s.CreatedBy != "alice" {
		t.Errorf("unexpected search: %+v", s)
	}
	if s.Visibility != model.VisibilityTeam {
		t.Errorf("visibility = %q, want team", s.Visibility)
	}
	if string(s.Filters) != `{"projectFilters":[]}` {
		t.Errorf("filters = %s", s.Filters)
	}
}

func TestQueryGetSavedSearch_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM saved_searches WHERE id`).
		WithArgs("ls-missing").
		WillReturnRows(searchRows())

	_, err := queryGetSavedSearch(context.Background(), db, "ls-missing")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestQueryListSavedSearches(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM saved_searches ORDER BY created_at DESC`).
		WillReturnRows(searchRows().
			AddRow("ls-2", "newer", "bob", "public", nil, now, now).
			AddRow("ls-1", "older", "alice", "private", nil, now.Add(-time.Hour), now.Add(-time.Hour)))

	searches, err := queryListSavedSearches(context.Background(), db)
	if err != nil {
		t.Fatalf("queryListSavedSearches: %v", err)
	}
	if len(searches) != 2 {
		t.Fatalf("got %d searches, want 2", len(searches))
	}
	if searches[0].ID != "ls-2" || searches[1].ID != "ls-1" {
		t.Errorf("ordering lost: %s, %s", searches[0].ID, searches[1].ID)
	}
	if searches[0].Filters != nil {
		t.Errorf("null filters should scan to nil, got %s", searches[0].Filters)
	}
}

func TestQueryUpdateSavedSearch(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now().UTC()
	mock.ExpectExec(`UPDATE saved_searches`).
		WithArgs("ls-1", "renamed", "public", nil, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := queryUpdateSavedSearch(context.Background(), db, &model.SavedSearch{
		ID:         "ls-1",
		Name:       "renamed",
		Visibility: model.VisibilityPublic,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("queryUpdateSavedSearch: %v", err)
	}
}

func TestQueryUpdateSavedSearch_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE saved_searches`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := queryUpdateSavedSearch(context.Background(), db, &model.SavedSearch{ID: "ls-missing"})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestQueryDeleteSavedSearch(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM saved_searches WHERE id`).
		WithArgs("ls-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := queryDeleteSavedSearch(context.Background(), db, "ls-1"); err != nil {
		t.Fatalf("queryDeleteSavedSearch: %v", err)
	}
}

func TestQueryDeleteSavedSearch_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM saved_searches WHERE id`).
		WithArgs("ls-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := queryDeleteSavedSearch(context.Background(), db, "ls-missing")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestQueryGetProjects(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now().UTC()
	start := now.Add(-48 * time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "status", "owner_id",
		"start_date", "due_date", "team_size", "created_at", "updated_at",
	}).
		AddRow("p1", "Apollo", "first project", "active", "u1", start, nil, 4, now, now).
		AddRow("p2", "Breakwater", nil, "planning", nil, nil, nil, 0, now, now)
	mock.ExpectQuery(`SELECT .+ FROM projects ORDER BY created_at`).WillReturnRows(rows)

	projects, err := queryGetProjects(context.Background(), db)
	if err != nil {
		t.Fatalf("queryGetProjects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	p := projects[0]
	if p.Description != "first project" || p.OwnerID != "u1" || p.TeamSize != 4 {
		t.Errorf("unexpected project: %+v", p)
	}
	if p.StartDate == nil || !p.StartDate.Equal(start) {
		t.Errorf("start date = %v, want %v", p.StartDate, start)
	}
	if p.DueDate != nil {
		t.Errorf("null due date should scan to nil, got %v", p.DueDate)
	}
	if projects[1].Description != "" || projects[1].OwnerID != "" {
		t.Errorf("null strings should scan to empty: %+v", projects[1])
	}
}

func TestQueryGetUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, username, role FROM users WHERE id`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}).AddRow("u1", "alice", "admin"))

	u, err := queryGetUser(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("queryGetUser: %v", err)
	}
	if u.Username != "alice" || u.Role != model.RoleAdmin {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestQueryGetUser_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, username, role FROM users WHERE id`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}))

	_, err := queryGetUser(context.Background(), db, "ghost")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}

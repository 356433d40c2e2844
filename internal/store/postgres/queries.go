package postgres

import (
	"context"
	"database/sql"

	"github.com/harborview/lens/internal/model"
)

// searchColumns is the column list used for SELECT statements on the
// saved_searches table.
const searchColumns = `id, name, created_by, visibility, filters, created_at, updated_at`

// projectColumns is the column list for the host app's projects table.
const projectColumns = `id, name, description, status, owner_id, start_date,
	due_date, team_size, created_at, updated_at`

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryCreateSavedSearch(ctx context.Context, db executor, s *model.SavedSearch) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO saved_searches (
			id, name, created_by, visibility, filters, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`,
		s.ID,
		s.Name,
		s.CreatedBy,
		string(s.Visibility),
		jsonbBytes(s.Filters),
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func queryGetSavedSearch(ctx context.Context, db executor, id string) (*model.SavedSearch, error) {
	row := db.QueryRowContext(ctx, `SELECT `+searchColumns+` FROM saved_searches WHERE id = $1`, id)
	return scanSavedSearch(row)
}

func queryListSavedSearches(ctx context.Context, db executor) ([]*model.SavedSearch, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+searchColumns+` FROM saved_searches ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []*model.SavedSearch
	for rows.Next() {
		s, err := scanSavedSearch(rows)
		if err != nil {
			return nil, err
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}

func queryUpdateSavedSearch(ctx context.Context, db executor, s *model.SavedSearch) error {
	res, err := db.ExecContext(ctx, `
		UPDATE saved_searches
		SET name = $2, visibility = $3, filters = $4, updated_at = $5
		WHERE id = $1`,
		s.ID,
		s.Name,
		string(s.Visibility),
		jsonbBytes(s.Filters),
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func queryDeleteSavedSearch(ctx context.Context, db executor, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM saved_searches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func queryGetProjects(ctx context.Context, db executor) ([]*model.Project, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func queryGetUser(ctx context.Context, db executor, id string) (*model.User, error) {
	row := db.QueryRowContext(ctx, `SELECT id, username, role FROM users WHERE id = $1`, id)
	return scanUser(row)
}

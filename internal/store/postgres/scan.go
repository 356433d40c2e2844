package postgres

import (
	"database/sql"
	"encoding/json"

	"github.com/harborview/lens/internal/model"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanSavedSearch scans a single row into a model.SavedSearch.
// The row must contain columns in the order defined by searchColumns.
func scanSavedSearch(row scannable) (*model.SavedSearch, error) {
	var s model.SavedSearch
	var filters []byte

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.CreatedBy,
		&s.Visibility,
		&filters,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(filters) > 0 {
		s.Filters = json.RawMessage(filters)
	}
	return &s, nil
}

// scanProject scans a single row into a model.Project.
// The row must contain columns in the order defined by projectColumns.
func scanProject(row scannable) (*model.Project, error) {
	var p model.Project
	var (
		description sql.NullString
		ownerID     sql.NullString
		startDate   sql.NullTime
		dueDate     sql.NullTime
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&description,
		&p.Status,
		&ownerID,
		&startDate,
		&dueDate,
		&p.TeamSize,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Description = description.String
	p.OwnerID = ownerID.String
	if startDate.Valid {
		t := startDate.Time
		p.StartDate = &t
	}
	if dueDate.Valid {
		t := dueDate.Time
		p.DueDate = &t
	}
	return &p, nil
}

// scanUser scans a single row into a model.User.
func scanUser(row scannable) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.Role); err != nil {
		return nil, err
	}
	return &u, nil
}

// jsonbBytes converts a raw JSON value for a jsonb column, mapping empty to NULL.
func jsonbBytes(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

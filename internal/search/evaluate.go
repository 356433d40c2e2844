package search

import (
	"log/slog"
	"strings"
	"time"

	"github.com/harborview/lens/internal/model"
)

// Operator is a filter clause comparison operator.
type Operator string

// Date-range operators.
const (
	OpOn      Operator = "on"
	OpBefore  Operator = "before"
	OpAfter   Operator = "after"
	OpBetween Operator = "between"
)

// Scalar operators. OpEquals/OpIs and OpNotEquals/OpIsNot are aliases; both
// spellings appear in stored documents.
const (
	OpEquals      Operator = "equals"
	OpIs          Operator = "is"
	OpNotEquals   Operator = "not_equals"
	OpIsNot       Operator = "is_not"
	OpContains    Operator = "contains"
	OpNotContains Operator = "not_contains"
	OpStartsWith  Operator = "starts_with"
	OpEndsWith    Operator = "ends_with"
	OpIsEmpty     Operator = "is_empty"
	OpIsNotEmpty  Operator = "is_not_empty"
)

// Record is a candidate entity flattened to attribute name -> scalar value
// for evaluation. The engine never mutates it.
type Record map[string]string

// Matches reports whether a single field value satisfies one resolved
// clause. The comparison regime is selected by the shape of resolved:
// a date range gets instant containment semantics, a plain string gets
// case-insensitive string comparison.
func Matches(fieldValue string, resolved ResolvedValue, op Operator) bool {
	if resolved.IsRange() {
		return matchRange(fieldValue, resolved.Range, op)
	}
	return matchScalar(fieldValue, resolved.Text, op)
}

// MatchesAll reports whether a record satisfies every clause in a filter
// group; resolved[i] must be the resolved value for clauses[i]. An empty
// clause list is vacuously true.
func MatchesAll(clauses []model.FilterClause, rec Record, resolved []ResolvedValue) bool {
	for i, c := range clauses {
		if !Matches(rec[AttrFor(c.Field)], resolved[i], Operator(c.Operator)) {
			return false
		}
	}
	return true
}

func matchRange(fieldValue string, r *DateRange, op Operator) bool {
	t, ok := parseInstant(fieldValue)
	if !ok {
		// A missing or unparseable date never satisfies a date filter,
		// regardless of operator.
		return false
	}

	switch op {
	case OpOn, OpEquals, OpIs, OpBetween:
		return !t.Before(r.Start) && !t.After(r.End)
	case OpBefore:
		return t.Before(r.Start)
	case OpAfter:
		return t.After(r.End)
	default:
		// Unknown operators match permissively so one malformed clause
		// cannot hide every record. Logged, never an error.
		slog.Warn("unknown date operator, matching permissively", "operator", string(op))
		return true
	}
}

func matchScalar(fieldValue, want string, op Operator) bool {
	// Emptiness operators ignore the comparison value entirely.
	switch op {
	case OpIsEmpty:
		return strings.TrimSpace(fieldValue) == ""
	case OpIsNotEmpty:
		return strings.TrimSpace(fieldValue) != ""
	}

	// An empty comparison value is "no constraint" for every other operator.
	if want == "" {
		return true
	}

	have := strings.ToLower(fieldValue)
	want = strings.ToLower(want)

	switch op {
	case OpEquals, OpIs:
		return have == want
	case OpNotEquals, OpIsNot:
		return have != want
	case OpContains:
		return strings.Contains(have, want)
	case OpNotContains:
		return !strings.Contains(have, want)
	case OpStartsWith:
		return strings.HasPrefix(have, want)
	case OpEndsWith:
		return strings.HasSuffix(have, want)
	default:
		slog.Warn("unknown operator, matching permissively", "operator", string(op))
		return true
	}
}

// instantLayouts are the accepted stored date formats, most specific first.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseInstant parses a record's stored date value. Layouts without a zone
// are interpreted in local time, matching smart value range resolution.
func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Package search implements the saved-search filter engine: smart value
// resolution, per-clause predicate evaluation, filter group matching,
// visibility filtering, and search execution against the record store.
package search

import (
	"log/slog"
	"strings"
	"time"
)

// smartPrefix marks a clause value as a symbolic token to be resolved at
// execution time.
const smartPrefix = "@"

// DateRange is an inclusive [Start, End] instant range.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolvedValue is the concrete comparison value for one clause: either a
// plain string in Text, or a date range when Range is non-nil. The evaluator
// branches its comparison regime on which shape it receives.
type ResolvedValue struct {
	Text  string
	Range *DateRange
}

// IsRange reports whether the value resolved to a date range.
func (v ResolvedValue) IsRange() bool {
	return v.Range != nil
}

// Resolve expands a symbolic @-prefixed token into a concrete comparison
// value for the acting principal at the given instant. Values without the @
// prefix pass through unchanged. Unknown @-tokens degrade to their literal
// form rather than failing the clause; the condition is only logged.
//
// Resolve is a pure function of (token, principalID, now).
func Resolve(token, principalID string, now time.Time) ResolvedValue {
	if !strings.HasPrefix(token, smartPrefix) {
		return ResolvedValue{Text: token}
	}

	switch strings.ToLower(token) {
	case "@me":
		return ResolvedValue{Text: principalID}
	case "@my-team":
		// Team resolution is not implemented yet; resolves to the acting
		// principal until team membership is available here.
		return ResolvedValue{Text: principalID}
	case "@today":
		return rangeValue(startOfDay(now), endOfDay(now))
	case "@this-week":
		// Weeks start on Sunday; not configurable.
		sunday := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
		return rangeValue(sunday, endOfDay(sunday.AddDate(0, 0, 6)))
	case "@this-month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return rangeValue(first, endOfDay(first.AddDate(0, 1, -1)))
	case "@this-year":
		jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		dec31 := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
		return rangeValue(jan1, endOfDay(dec31))
	default:
		slog.Warn("unresolved smart value, using as literal", "token", token)
		return ResolvedValue{Text: token}
	}
}

func rangeValue(start, end time.Time) ResolvedValue {
	return ResolvedValue{Range: &DateRange{Start: start, End: end}}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns 23:59:59.999 of t's calendar day, one millisecond short
// of the next midnight.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

package search

// fieldAttrs maps user-facing filter field names to the underlying record
// attribute names. Fields absent from the map are used verbatim, so new
// record attributes work without touching the evaluator.
var fieldAttrs = map[string]string{
	"created_by":    "owner_id",
	"created":       "created_at",
	"last_modified": "updated_at",
	"started":       "start_date",
	"due_date":      "due_date",
	"team_size":     "team_size",
}

// AttrFor translates a clause's user-facing field name to the record
// attribute name it is evaluated against.
func AttrFor(field string) string {
	if attr, ok := fieldAttrs[field]; ok {
		return attr
	}
	return field
}

package model

import (
	"encoding/json"
	"testing"
)

func TestVisibilityIsValid(t *testing.T) {
	for _, v := range []Visibility{VisibilityPrivate, VisibilityTeam, VisibilityShared, VisibilityPublic} {
		if !v.IsValid() {
			t.Errorf("%s should be valid", v)
		}
	}
	for _, v := range []Visibility{"", "org", "PUBLIC"} {
		if v.IsValid() {
			t.Errorf("%q should not be valid", v)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleUser, RoleViewer} {
		if !r.IsValid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("superuser").IsValid() || Role("").IsValid() {
		t.Error("unknown roles should not be valid")
	}
}

func TestParseFilterDocument(t *testing.T) {
	raw := json.RawMessage(`{
		"projectFilters": [
			{"field": "status", "operator": "is", "value": "active", "visible": true},
			{"field": "created_by", "operator": "is", "value": "", "smartValue": "@me"}
		],
		"taskFilters": [
			{"field": "due_date", "operator": "before", "smartValue": "@today"}
		]
	}`)

	doc, err := ParseFilterDocument(raw)
	if err != nil {
		t.Fatalf("ParseFilterDocument: %v", err)
	}
	if len(doc.ProjectFilters) != 2 {
		t.Fatalf("got %d project filters, want 2", len(doc.ProjectFilters))
	}
	first := doc.ProjectFilters[0]
	if first.Field != "status" || first.Operator != "is" || first.Value != "active" || !first.Visible {
		t.Errorf("first project clause = %+v", first)
	}
	if doc.ProjectFilters[1].SmartValue != "@me" {
		t.Errorf("smartValue = %q, want @me", doc.ProjectFilters[1].SmartValue)
	}
	if len(doc.TaskFilters) != 1 {
		t.Errorf("got %d task filters, want 1", len(doc.TaskFilters))
	}
	if len(doc.FileFilters) != 0 || len(doc.AttributeFilters) != 0 {
		t.Error("absent groups should parse as empty")
	}
}

func TestParseFilterDocument_EmptyRaw(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, {}} {
		doc, err := ParseFilterDocument(raw)
		if err != nil {
			t.Fatalf("ParseFilterDocument(empty): %v", err)
		}
		if doc == nil || len(doc.ProjectFilters) != 0 {
			t.Errorf("empty raw should yield an empty document, got %+v", doc)
		}
	}
}

func TestParseFilterDocument_MalformedJSON(t *testing.T) {
	if _, err := ParseFilterDocument(json.RawMessage(`{"projectFilters": "nope"}`)); err == nil {
		t.Error("wrong-typed group should be an error")
	}
	if _, err := ParseFilterDocument(json.RawMessage(`{truncated`)); err == nil {
		t.Error("truncated JSON should be an error")
	}
}

func TestFilterDocumentRoundTripOmitsEmptyGroups(t *testing.T) {
	raw, err := json.Marshal(&FilterDocument{
		ProjectFilters: []FilterClause{{Field: "status", Operator: "is", Value: "active"}},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["taskFilters"]; ok {
		t.Error("empty groups should be omitted from serialized documents")
	}
	if _, ok := m["projectFilters"]; !ok {
		t.Error("populated group missing from serialized document")
	}
}

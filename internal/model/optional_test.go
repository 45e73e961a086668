package model

import (
	"encoding/json"
	"errors"
	"testing"
)

type patchBody struct {
	Title            Optional[string] `json:"title"`
	FirstPublishYear Optional[int]    `json:"first_publish_year"`
}

func TestOptional_UnmarshalDistinguishesOmittedFromNull(t *testing.T) {
	var body patchBody
	if err := json.Unmarshal([]byte(`{"first_publish_year": null}`), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if body.Title.Set {
		t.Errorf("expected title to be unset when omitted")
	}
	if !body.FirstPublishYear.Set {
		t.Fatalf("expected first_publish_year to be set when sent as null")
	}
	if !body.FirstPublishYear.IsNull() {
		t.Errorf("expected first_publish_year to be null, got %v", body.FirstPublishYear)
	}
}

func TestOptional_UnmarshalValue(t *testing.T) {
	var body patchBody
	if err := json.Unmarshal([]byte(`{"title": "Dune", "first_publish_year": 1965}`), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if body.Title.Value == nil || *body.Title.Value != "Dune" {
		t.Errorf("expected title Dune, got %v", body.Title)
	}
	if body.FirstPublishYear.Value == nil || *body.FirstPublishYear.Value != 1965 {
		t.Errorf("expected year 1965, got %v", body.FirstPublishYear)
	}
}

func TestOptional_UnmarshalWrongType(t *testing.T) {
	var body patchBody
	err := json.Unmarshal([]byte(`{"first_publish_year": "soon"}`), &body)
	if err == nil {
		t.Fatalf("expected error for string year")
	}

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *json.UnmarshalTypeError, got %T", err)
	}
}

func TestOptional_Marshal(t *testing.T) {
	b, err := json.Marshal(patchBody{Title: Some("Dune"), FirstPublishYear: Null[int]()})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if got, want := string(b), `{"title":"Dune","first_publish_year":null}`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestBookPatch_Columns(t *testing.T) {
	patch := BookPatch{
		Author:           Some("F. Herbert"),
		FirstPublishYear: Null[int](),
	}

	cols := patch.Columns()

	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d: %v", len(cols), cols)
	}
	if _, ok := cols["title"]; ok {
		t.Errorf("expected title to be absent")
	}
	if cols["author"] != "F. Herbert" {
		t.Errorf("expected author F. Herbert, got %v", cols["author"])
	}
	if v, ok := cols["first_publish_year"]; !ok || v != nil {
		t.Errorf("expected first_publish_year to be present and nil, got %v (present=%v)", v, ok)
	}
}

func TestBookPatch_IsEmpty(t *testing.T) {
	if !(BookPatch{}).IsEmpty() {
		t.Errorf("expected zero patch to be empty")
	}
	if (BookPatch{Title: Some("x")}).IsEmpty() {
		t.Errorf("expected patch with title to be non-empty")
	}
}

package validate

import (
	"errors"
	"testing"
)

type sample struct {
	Name   string   `json:"name" validate:"required"`
	Email  string   `json:"email" validate:"required,email"`
	Rating *float64 `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Kind   string   `json:"kind" validate:"oneof=a b"`
}

func TestStructValid(t *testing.T) {
	rating := 4.0
	if err := Struct(sample{Name: "n", Email: "n@example.com", Rating: &rating, Kind: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	rating := 9.0
	err := Struct(sample{Email: "nope", Rating: &rating, Kind: "c"})

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %v", err)
	}

	got := map[string]string{}
	for _, f := range verr.Fields {
		got[f.Field] = f.Rule
	}
	want := map[string]string{
		"name":   "required",
		"email":  "email",
		"rating": "max=5",
		"kind":   "oneof=a b",
	}
	for field, rule := range want {
		if got[field] != rule {
			t.Fatalf("field %s: expected rule %q, got %q (all: %v)", field, rule, got[field], got)
		}
	}
}

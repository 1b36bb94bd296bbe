package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "atelier/internal/platform/errors"
)

type samplePayload struct {
	Text string `json:"text" validate:"required,min=2"`
	Date string `json:"date,omitempty" validate:"omitempty,isodate"`
}

func TestParseJSONHappyPath(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"text":"note pour Magnetize, ok"}`))
	got, err := ParseJSON[samplePayload](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text == "" {
		t.Fatalf("text not bound: %+v", got)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(""))
	if _, err := ParseJSON[samplePayload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("empty body must be a JSON error, got %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"text":"ok","bogus":1}`))
	if _, err := ParseJSON[samplePayload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("unknown field must be rejected, got %v", err)
	}
}

func TestParseJSONValidation(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"text":"a"}`))
	_, err := ParseJSON[samplePayload](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("min violation must be a validation error, got %v", err)
	}
}

func TestParseJSONISODateTag(t *testing.T) {
	ok := httptest.NewRequest("POST", "/x", strings.NewReader(`{"text":"ok","date":"2026-08-29"}`))
	if _, err := ParseJSON[samplePayload](ok); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}

	bad := httptest.NewRequest("POST", "/x", strings.NewReader(`{"text":"ok","date":"demain"}`))
	_, err := ParseJSON[samplePayload](bad)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("non-ISO date must be a validation error, got %v", err)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"text":"ok"}{"text":"again"}`))
	if _, err := ParseJSON[samplePayload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing data must be rejected, got %v", err)
	}
}

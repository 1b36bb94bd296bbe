package net

import (
	"net/http"
	"testing"

	perr "atelier/internal/platform/errors"
)

func TestOKEnvelope(t *testing.T) {
	status, w := OK(map[string]int{"n": 3}, "req-1")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if w.RequestID != "req-1" || w.Error != "" {
		t.Fatalf("unexpected envelope: %+v", w)
	}
}

func TestErrorEnvelope(t *testing.T) {
	status, w := Error(perr.Validationf("scope vide"), "req-2")
	if status != http.StatusBadRequest {
		t.Fatalf("validation must map to 400, got %d", status)
	}
	if w.Code != perr.ErrorCodeValidation || w.Error != "scope vide" {
		t.Fatalf("unexpected envelope: %+v", w)
	}
}

func TestErrorNilIsOK(t *testing.T) {
	status, _ := Error(nil, "req-3")
	if status != http.StatusOK {
		t.Fatalf("nil error must be 200, got %d", status)
	}
}

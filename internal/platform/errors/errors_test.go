package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validationf("empty scope"), http.StatusBadRequest},
		{InvalidArgf("bad id"), http.StatusUnprocessableEntity},
		{DuplicateKeyf("dup"), http.StatusConflict},
		{Unauthorizedf("no token"), http.StatusUnauthorized},
		{NotFoundf("missing"), http.StatusNotFound},
		{DBf("boom"), http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestWrapAndRoot(t *testing.T) {
	cause := fmt.Errorf("db down")
	err := Wrap(cause, ErrorCodeDB, "update failed")

	if Root(err) != cause {
		t.Fatalf("Root must return the deepest cause")
	}
	if !IsCode(err, ErrorCodeDB) {
		t.Fatalf("code lost through wrap")
	}
	e, ok := As(err)
	if !ok {
		t.Fatalf("As must find our type")
	}
	if e.ToWire().Message != "update failed" {
		t.Fatalf("wire message wrong: %+v", e.ToWire())
	}
}

func TestWithField(t *testing.T) {
	err := Validationf("date invalide")
	err2 := WithField(err, "new_deadline")

	e2, _ := As(err2)
	if e2.Field() != "new_deadline" {
		t.Fatalf("field not attached")
	}
	e1, _ := As(err)
	if e1.Field() != "" {
		t.Fatalf("WithField must copy, not mutate")
	}
}

func TestIsDuplicateKey(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "assistant_confirmations_confirmation_id_key"}
	wrapped := Wrap(pgErr, ErrorCodeDB, "insert marker")

	if !IsDuplicateKey(wrapped) {
		t.Fatalf("unique violation must be detected through wrapping")
	}
	if IsDuplicateKey(fmt.Errorf("nope")) {
		t.Fatalf("plain error is not a duplicate key")
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(&pgconn.PgError{Code: "40001"}) {
		t.Fatalf("serialization failure is retryable")
	}
	if Retryable(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("unique violation is not retryable")
	}
	if Retryable(nil) {
		t.Fatalf("nil is not retryable")
	}
}

package ident

import (
	"net/http/httptest"
	"testing"
)

func TestParseKnownToken(t *testing.T) {
	v := New("tok-abc:owner-1, tok-def:owner-2")

	r := httptest.NewRequest("POST", "/x", nil)
	r.Header.Set("Authorization", "Bearer tok-def")

	uid, oid, err := v.Parse(r)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if uid != "owner-2" || oid != "owner-2" {
		t.Fatalf("got %q/%q", uid, oid)
	}
}

func TestParseRejects(t *testing.T) {
	v := New("tok-abc:owner-1")

	missing := httptest.NewRequest("POST", "/x", nil)
	if _, _, err := v.Parse(missing); err == nil {
		t.Fatalf("missing header must fail")
	}

	unknown := httptest.NewRequest("POST", "/x", nil)
	unknown.Header.Set("Authorization", "Bearer nope")
	if _, _, err := v.Parse(unknown); err == nil {
		t.Fatalf("unknown token must fail")
	}
}

func TestNewSkipsMalformedPairs(t *testing.T) {
	v := New("bad, :x, y:, tok:owner")
	if v.Empty() {
		t.Fatalf("valid pair must survive")
	}
	if len(v.tokens) != 1 {
		t.Fatalf("malformed pairs must be skipped: %v", v.tokens)
	}
}

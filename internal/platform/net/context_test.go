package net

import (
	"context"
	"testing"
)

func TestWithRequestRoundTrip(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-123", "owner-9")

	if got := RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID = %q", got)
	}
	if got := OwnerID(ctx); got != "owner-9" {
		t.Fatalf("OwnerID = %q", got)
	}
}

func TestWithRequestSkipsEmpty(t *testing.T) {
	ctx := WithRequest(context.Background(), "", "")
	if RequestID(ctx) != "" || OwnerID(ctx) != "" {
		t.Fatalf("empty ids must not be stored")
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), "u-1")
	if got := UserID(ctx); got != "u-1" {
		t.Fatalf("UserID = %q", got)
	}
	if UserID(context.Background()) != "" {
		t.Fatalf("unset user must be empty")
	}
}

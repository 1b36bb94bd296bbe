package modkit

import (
	"net/http"
	"testing"

	"atelier/internal/modkit/httpkit"
)

func TestBuildDefaults(t *testing.T) {
	b := Build(WithName("assistant"), WithPrefix("/assistant"))
	if b.Name != "assistant" || b.Prefix != "/assistant" {
		t.Fatalf("unexpected build: %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("hooks must default to no-ops")
	}
	// default hooks must be callable
	if got := b.Subrouter(nil); got != httpkit.Router(nil) {
		t.Fatalf("default subrouter must be identity")
	}
	b.Register(nil)
}

func TestBuildCopiesMiddleware(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	b := Build(WithMiddlewares(mw, mw))
	if len(b.Mw) != 2 {
		t.Fatalf("middlewares lost: %d", len(b.Mw))
	}
}

func TestWithPorts(t *testing.T) {
	type ports struct{ N int }
	b := Build(WithPorts(ports{N: 7}))
	p, ok := b.Ports.(ports)
	if !ok || p.N != 7 {
		t.Fatalf("ports not carried: %+v", b.Ports)
	}
}

package module

import "testing"

type notePort interface{ Name() string }

type fakePort struct{}

func (fakePort) Name() string { return "assistant" }

func TestRegistryRoundTrip(t *testing.T) {
	t.Cleanup(Reset)

	Register("assistant", fakePort{})

	p, ok := PortsAs[notePort]("assistant")
	if !ok || p.Name() != "assistant" {
		t.Fatalf("ports not found")
	}

	if _, ok := PortsAs[notePort]("missing"); ok {
		t.Fatalf("missing module must not resolve")
	}
}

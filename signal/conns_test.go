package signal

import "testing"

type nopPeer struct{}

func (nopPeer) Send(v any) {}

func TestConns_AddGetRemove(t *testing.T) {
	conns := NewConns()

	p := nopPeer{}
	id := conns.Add(p)
	if id == "" {
		t.Fatal("Add returned an empty ID")
	}

	if _, ok := conns.Get(id); !ok {
		t.Error("Registered connection not found")
	}
	if conns.Len() != 1 {
		t.Errorf("Expected 1 connection, got %d", conns.Len())
	}

	conns.Remove(id)
	if _, ok := conns.Get(id); ok {
		t.Error("Removed connection still present")
	}

	// Remove is idempotent.
	conns.Remove(id)
	if conns.Len() != 0 {
		t.Errorf("Expected 0 connections, got %d", conns.Len())
	}
}

func TestConns_UniqueIDs(t *testing.T) {
	conns := NewConns()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := conns.Add(nopPeer{})
		if seen[id] {
			t.Fatalf("Duplicate connection ID: %s", id)
		}
		seen[id] = true
	}
}

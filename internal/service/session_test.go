package service

import (
	"testing"
	"time"

	"github.com/Autonomanetwork/arcadify-test/internal/quote"
)

func TestSessionService_Lifecycle(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(discardLogger(), testRegistry(), testProvider(), 0, 0)

	id := svc.Create()
	if id == "" {
		t.Fatalf("empty session id")
	}

	snap, err := svc.Snapshot(id)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if snap.State != quote.StateIdle {
		t.Fatalf("new session not idle: %+v", snap)
	}

	snap, err = svc.Update(id, arcID, usdID, "0.001")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if snap.FromID != arcID || snap.ToID != usdID || snap.Input != "0.001" {
		t.Fatalf("input not applied: %+v", snap)
	}

	deadline := time.Now().Add(2 * time.Second)
	for snap.State != quote.StateResolved && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
		snap, err = svc.Snapshot(id)
		if err != nil {
			t.Fatalf("Snapshot error: %v", err)
		}
	}
	if snap.State != quote.StateResolved || snap.Output != "0.000498" {
		t.Fatalf("quote never resolved: %+v", snap)
	}

	snap, err = svc.Flip(id)
	if err != nil {
		t.Fatalf("Flip error: %v", err)
	}
	if snap.State != quote.StateIdle || snap.FromID != usdID || snap.ToID != arcID || snap.Input != "" {
		t.Fatalf("flip did not reset the form: %+v", snap)
	}
}

func TestSessionService_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(discardLogger(), testRegistry(), testProvider(), 0, 0)

	if _, err := svc.Snapshot("nope"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Update("nope", arcID, usdID, "1"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Flip("nope"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_Eviction(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(discardLogger(), testRegistry(), testProvider(), 0, 10*time.Minute)

	current := time.Now()
	svc.now = func() time.Time { return current }

	id := svc.Create()
	if _, err := svc.Snapshot(id); err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}

	current = current.Add(11 * time.Minute)
	if _, err := svc.Snapshot(id); err != ErrSessionNotFound {
		t.Fatalf("expected eviction, got %v", err)
	}
}

func TestSessionService_EvictionSparesActive(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(discardLogger(), testRegistry(), testProvider(), 0, 10*time.Minute)

	current := time.Now()
	svc.now = func() time.Time { return current }

	stale := svc.Create()
	active := svc.Create()

	current = current.Add(6 * time.Minute)
	if _, err := svc.Snapshot(active); err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}

	current = current.Add(6 * time.Minute)
	if _, err := svc.Snapshot(active); err != nil {
		t.Fatalf("active session evicted: %v", err)
	}
	if _, err := svc.Snapshot(stale); err != ErrSessionNotFound {
		t.Fatalf("stale session survived: %v", err)
	}
}

package app

import (
	"errors"
	"testing"
	"time"

	"undercover/internal/domain"
)

func newTestHub(t *testing.T) *GameHub {
	t.Helper()
	hub := NewGameHub(&fakeMaterials{}, testOptions(), time.Hour, testLogger())
	t.Cleanup(hub.Close)
	return hub
}

func TestHubCreateGetDelete(t *testing.T) {
	hub := newTestHub(t)

	a, err := hub.CreateSession()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := hub.CreateSession()
	if a.ID() == b.ID() {
		t.Fatal("Session ids must be unique")
	}
	if hub.GetSessionCount() != 2 {
		t.Errorf("Expected 2 sessions, got %d", hub.GetSessionCount())
	}

	got, err := hub.GetSession(a.ID())
	if err != nil || got != a {
		t.Errorf("GetSession returned %v, %v", got, err)
	}
	if got.Phase() != domain.PhaseModeSelection {
		t.Errorf("New sessions start in mode selection, got %s", got.Phase())
	}

	if err := hub.DeleteSession(a.ID()); err != nil {
		t.Fatal(err)
	}
	if _, err := hub.GetSession(a.ID()); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if err := hub.DeleteSession(a.ID()); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestHubCleanupStaleSessions(t *testing.T) {
	hub := newTestHub(t)

	idle, _ := hub.CreateSession()
	connected, _ := hub.CreateSession()
	connected.RegisterClient("device", &fakeClient{id: "device"})

	hub.cleanupStaleSessions(time.Now().Add(30 * time.Minute))
	if hub.GetSessionCount() != 2 {
		t.Fatal("Sessions idle less than the timeout must survive")
	}

	hub.cleanupStaleSessions(time.Now().Add(2 * time.Hour))
	if _, err := hub.GetSession(idle.ID()); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Error("Idle session without clients should be removed")
	}
	if _, err := hub.GetSession(connected.ID()); err != nil {
		t.Error("Session with a connected client should survive")
	}
	if hub.GetClientCount() != 1 {
		t.Errorf("Expected 1 client, got %d", hub.GetClientCount())
	}
}

func TestHubClosed(t *testing.T) {
	hub := NewGameHub(&fakeMaterials{}, testOptions(), 0, testLogger())
	hub.CreateSession()
	hub.Close()
	hub.Close()

	if hub.GetSessionCount() != 0 {
		t.Error("Close should drop every session")
	}
	if _, err := hub.CreateSession(); !errors.Is(err, ErrHubClosed) {
		t.Errorf("Expected ErrHubClosed, got %v", err)
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrBlankCategory, ErrCodeBlankCategory},
		{domain.ErrInvalidTransition, ErrCodeInvalidPhase},
		{ErrSessionChanged, ErrCodeSessionChanged},
		{errors.Join(errors.New("preset"), domain.ErrMaterialsUnavailable), ErrCodeMaterialsUnavailable},
		{errors.New("boom"), ErrCodeInternal},
	}
	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.want {
			t.Errorf("ErrorCode(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")

	if _, ok, err := LoadSession(path); err != nil || ok {
		t.Fatalf("LoadSession() on missing file = ok %v, err %v", ok, err)
	}

	want := Session{Token: "tok", User: User{ID: 3, Name: "Ada", Email: "ada@example.com"}}
	if err := SaveSession(path, want); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("session file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("session file mode = %v, expected 0600", perm)
	}

	got, ok, err := LoadSession(path)
	if err != nil || !ok {
		t.Fatalf("LoadSession() = ok %v, err %v", ok, err)
	}
	if got != want {
		t.Errorf("LoadSession() = %+v, expected %+v", got, want)
	}

	if err := ClearSession(path); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}
	if err := ClearSession(path); err != nil {
		t.Errorf("second ClearSession() failed: %v", err)
	}
	if _, ok, _ := LoadSession(path); ok {
		t.Error("session should be gone after ClearSession")
	}
}

func TestLoadSessionCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	os.WriteFile(path, []byte("token: [unterminated"), 0o600)

	if _, _, err := LoadSession(path); err == nil {
		t.Error("expected a parse error")
	}
}

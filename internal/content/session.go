package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Session is the logged-in state kept between CLI runs.
type Session struct {
	Token string `yaml:"token"`
	User  User   `yaml:"user"`
}

// DefaultSessionPath returns ~/.tummy/session.yaml.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("content: cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".tummy", "session.yaml"), nil
}

// LoadSession reads the session at path. ok is false when nobody is logged in.
func LoadSession(path string) (s Session, ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("content: cannot read session: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Session{}, false, fmt.Errorf("content: cannot parse session: %w", err)
	}
	return s, s.Token != "", nil
}

// SaveSession writes s to path, readable only by the owner.
func SaveSession(path string, s Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("content: cannot create session directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("content: cannot encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("content: cannot write session: %w", err)
	}
	return nil
}

// ClearSession removes the session file. A missing file is not an error.
func ClearSession(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("content: cannot remove session: %w", err)
	}
	return nil
}

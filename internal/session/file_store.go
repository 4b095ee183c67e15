package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the session across process restarts.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// FileStore keeps the session as a JSON envelope on disk. It is the
// default store when no Redis is configured.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(ctx context.Context) (*Session, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && (env.State.HasToken() || env.State.IsAuthenticated) {
		return &env.State, nil
	}

	// Fallback: older writers stored the raw token string directly.
	token := strings.TrimSpace(string(raw))
	if token != "" && !strings.HasPrefix(token, "{") {
		return &Session{IsAuthenticated: true, Token: token, TokenType: DefaultTokenType}, nil
	}

	return nil, nil
}

func (f *FileStore) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(envelope{State: *s})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// Write-then-rename so a crash never leaves a torn session file.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) Clear(ctx context.Context) error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

package board

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SessionContext remembers the user's last board and last insertion
// column across runs. It has an explicit lifecycle: loaded once at
// startup, updated on user action, saved on exit. LastColumnID seeds
// the initial column selection, so quick-capture defaults to the
// column the previous session captured into.
type SessionContext struct {
	LastBoardID  int `yaml:"last_board_id"`
	LastColumnID int `yaml:"last_column_id"`
}

// LoadSession reads the session file from the user's state
// directory. A missing or unreadable file yields a zero session, not
// an error: first runs have no session to restore.
func LoadSession() *SessionContext {
	path, err := sessionPath()
	if err != nil {
		return &SessionContext{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &SessionContext{}
	}
	var sess SessionContext
	if yaml.Unmarshal(data, &sess) != nil {
		return &SessionContext{}
	}
	return &sess
}

// Save writes the session to the user's state directory.
func (s *SessionContext) Save() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func sessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tabula", "session.yaml"), nil
}

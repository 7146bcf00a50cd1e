package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultStateDir is the directory under $HOME for state files
	DefaultStateDir = ".local/state/floatwin"
	// DefaultStateFile is the state file name
	DefaultStateFile = "windows.json"
)

// GetStatePath returns the full path to the state file
func GetStatePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultStateDir, DefaultStateFile)
}

// LoadState loads state from the default path
func LoadState() (*RuntimeState, error) {
	return LoadStateFrom(GetStatePath())
}

// LoadStateFrom loads state from path. A missing file is an empty state.
func LoadStateFrom(path string) (*RuntimeState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRuntimeState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	rs := NewRuntimeState()
	if err := json.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
	}
	if rs.Version > StateVersion {
		return nil, fmt.Errorf("state file %s has version %d, newer than %d", path, rs.Version, StateVersion)
	}
	rs.Version = StateVersion

	if rs.Windows == nil {
		rs.Windows = make(map[string]*WindowState)
	}
	for host, ws := range rs.Windows {
		if ws == nil || !ws.Policy.Valid() {
			delete(rs.Windows, host)
		}
	}
	return rs, nil
}

// Save persists state to the default path
func (rs *RuntimeState) Save() error {
	return rs.SaveTo(GetStatePath())
}

// SaveTo writes the state to path. The file is replaced atomically, so a
// crash mid-write leaves the previous state intact.
func (rs *RuntimeState) SaveTo(path string) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.LastUpdated = time.Now()
	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Reset clears all state and saves to disk
func (rs *RuntimeState) Reset() error {
	return rs.ResetAt(GetStatePath())
}

// ResetAt clears all state and saves it to path
func (rs *RuntimeState) ResetAt(path string) error {
	rs.mu.Lock()
	rs.Windows = make(map[string]*WindowState)
	rs.mu.Unlock()

	return rs.SaveTo(path)
}

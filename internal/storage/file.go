package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func init() {
	registry.Register(BackendJSON, "~/.t2048/score_state.json", func(path string) (registry.Backend, error) {
		return OpenFile(path)
	})
}

// FileStore keeps the ledger in a single file as
// {"best_score": N, "total_score": N}. Paths ending in .yaml or .yml
// use the same keys in YAML.
type FileStore struct {
	path string
	yaml bool
}

var _ registry.Backend = (*FileStore)(nil)

// OpenFile prepares a file store at path. The file itself is created on
// the first Save.
func OpenFile(path string) (*FileStore, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New("storage: empty ledger file path")
	}

	ext := strings.ToLower(filepath.Ext(path))
	return &FileStore{path: path, yaml: ext == ".yaml" || ext == ".yml"}, nil
}

// Path returns the resolved file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the ledger file.
// Returns t2048.ErrLedgerNotFound if the file does not exist.
func (f *FileStore) Load() (t2048.Ledger, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return t2048.Ledger{}, t2048.ErrLedgerNotFound
	}
	if err != nil {
		return t2048.Ledger{}, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	var l t2048.Ledger
	if f.yaml {
		err = yaml.Unmarshal(data, &l)
	} else {
		err = json.Unmarshal(data, &l)
	}
	if err != nil {
		return t2048.Ledger{}, fmt.Errorf("storage: cannot parse %s: %w", f.path, err)
	}
	return l, nil
}

// Save writes the ledger, replacing the file atomically.
func (f *FileStore) Save(l t2048.Ledger) error {
	var (
		data []byte
		err  error
	)
	if f.yaml {
		data, err = yaml.Marshal(l)
	} else {
		data, err = json.MarshalIndent(l, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("storage: cannot encode ledger: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write ledger: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// Reset removes the ledger file.
func (f *FileStore) Reset() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (f *FileStore) Close() error {
	return nil
}

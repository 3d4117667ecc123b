package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/shadng/sngmcp"
)

// Ensure SnapshotStore implements sngmcp.SnapshotStore at compile time.
var _ sngmcp.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore persists the snapshot as an indented JSON document.
//
// Load tries each candidate path in order and returns the first document
// that parses and carries every required section. Save always writes the
// first path.
type SnapshotStore struct {
	paths []string
}

// NewSnapshotStore creates a store over the given candidate paths.
func NewSnapshotStore(path string, fallbacks ...string) *SnapshotStore {
	return &SnapshotStore{paths: append([]string{path}, fallbacks...)}
}

// Path returns the location Save writes to.
func (s *SnapshotStore) Path() string {
	return s.paths[0]
}

func (s *SnapshotStore) Load(ctx context.Context) (*sngmcp.Snapshot, error) {
	for _, path := range s.paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, iofs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		snapshot, err := decodeSnapshot(data)
		if err != nil {
			continue
		}
		return snapshot, nil
	}
	return nil, sngmcp.Errorf(sngmcp.ENOTFOUND, "no valid snapshot found at %s", s.paths[0])
}

// Save writes through a temporary file in the target directory and renames
// it into place, so readers never observe a partial document.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *sngmcp.Snapshot) error {
	data, err := EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	path := s.paths[0]
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// EncodeSnapshot renders the snapshot with two-space indentation and a
// trailing newline.
func EncodeSnapshot(snapshot *sngmcp.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

var requiredSections = []string{"components", "icons", "authoringGuide", "dashboardContext"}

func decodeSnapshot(data []byte) (*sngmcp.Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, sngmcp.Errorf(sngmcp.EINVALID, "invalid snapshot: %s", err)
	}
	for _, key := range requiredSections {
		value, ok := raw[key]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return nil, sngmcp.Errorf(sngmcp.EINVALID, "snapshot %s required", key)
		}
	}
	for _, key := range []string{"components", "icons"} {
		if v := bytes.TrimSpace(raw[key]); len(v) == 0 || v[0] != '[' {
			return nil, sngmcp.Errorf(sngmcp.EINVALID, "snapshot %s must be a list", key)
		}
	}

	var snapshot sngmcp.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, sngmcp.Errorf(sngmcp.EINVALID, "invalid snapshot: %s", err)
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

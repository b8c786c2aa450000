package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// FileBackend keeps the snapshot in memory and rewrites the whole db.json
// document after every mutation, exactly like the original flat-file store.
type FileBackend struct {
	path string
	snap *Snapshot
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load(_ context.Context) (*Snapshot, error) {
	if b.snap != nil {
		return b.snap, nil
	}

	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		logrus.WithField("path", b.path).Info("Database file not found, starting empty")
		b.snap = NewSnapshot()
		return b.snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading database file: %w", err)
	}

	snap := NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("parsing database file: %w", err)
	}
	if len(snap.NextID) == 0 {
		snap.deriveNextIDs()
	}

	logrus.WithField("path", b.path).Info("Database file loaded")
	b.snap = snap
	return b.snap, nil
}

func (b *FileBackend) Persist(_ context.Context, snap *Snapshot, _ ...Collection) error {
	b.snap = snap

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing database: %w", err)
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("writing database file: %w", err)
	}
	return nil
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shadng/sngmcp"
)

// Ensure LoggingSnapshotStore implements sngmcp.SnapshotStore.
var _ sngmcp.SnapshotStore = (*LoggingSnapshotStore)(nil)

// LoggingSnapshotStore wraps a SnapshotStore with logging.
type LoggingSnapshotStore struct {
	next   sngmcp.SnapshotStore
	logger *slog.Logger
}

// NewLoggingSnapshotStore creates a new LoggingSnapshotStore.
func NewLoggingSnapshotStore(next sngmcp.SnapshotStore, logger *slog.Logger) *LoggingSnapshotStore {
	return &LoggingSnapshotStore{next: next, logger: logger}
}

func (s *LoggingSnapshotStore) Load(ctx context.Context) (snapshot *sngmcp.Snapshot, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if snapshot != nil {
			attrs = append([]any{
				"components", len(snapshot.Components),
				"icons", len(snapshot.Icons),
				"source_version", snapshot.SourceVersion,
			}, attrs...)
		}
		s.logger.Info("snapshot load", attrs...)
	}(time.Now())
	return s.next.Load(ctx)
}

func (s *LoggingSnapshotStore) Save(ctx context.Context, snapshot *sngmcp.Snapshot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("snapshot save",
			"components", len(snapshot.Components),
			"icons", len(snapshot.Icons),
			"source_version", snapshot.SourceVersion,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, snapshot)
}

package mock

import (
	"context"

	"github.com/shadng/sngmcp"
)

var _ sngmcp.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of sngmcp.SnapshotStore.
type SnapshotStore struct {
	LoadFn func(ctx context.Context) (*sngmcp.Snapshot, error)
	SaveFn func(ctx context.Context, snapshot *sngmcp.Snapshot) error
}

func (s *SnapshotStore) Load(ctx context.Context) (*sngmcp.Snapshot, error) {
	return s.LoadFn(ctx)
}

func (s *SnapshotStore) Save(ctx context.Context, snapshot *sngmcp.Snapshot) error {
	return s.SaveFn(ctx, snapshot)
}

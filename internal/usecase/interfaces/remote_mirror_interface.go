package interfaces

import (
	"context"

	"woodshop_builds/internal/domain/entities"
)

// IRemoteMirror abstracts the remote document collection used for best-effort
// backup and multi-device continuity. Not a consistency protocol: callers
// merge last-writer-wins on UpdatedAt.
//
//   - FetchAll returns the remote collection ordered by UpdatedAt descending,
//     capped by the implementation.
//   - Push upserts one build document (full replace keyed by id).

type IRemoteMirror interface {
	Enabled() bool
	FetchAll(ctx context.Context) ([]entities.Build, error)
	Push(ctx context.Context, b entities.Build) error
	Delete(ctx context.Context, id string) error
}

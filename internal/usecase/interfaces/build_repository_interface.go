package interfaces

import (
	"context"
	"errors"

	"woodshop_builds/internal/domain/entities"
)

// ErrRevisionConflict is returned by Upsert when the stored build's Rev no
// longer matches the one the caller read. The caller must re-read and retry
// (or abandon, for scheduler ticks).
var ErrRevisionConflict = errors.New("build revision conflict")

// IBuildRepository abstracts the local record store for Build documents.
//
// Contract:
//   - GetByID returns a zero-value Build (empty ID) when the id is unknown.
//   - Upsert is whole-document and compare-and-swap on Rev: inserting requires
//     an unseen id, replacing requires the caller's Rev to match the stored
//     one. The stored copy (Rev bumped) is returned. Writes persist durably
//     before returning; a subsequent GetByID on the same store reflects them.
//   - ReplaceAll swaps the entire collection in one shot. Reconciliation and
//     restore own full-state writes and bypass the CAS check.
//   - Implementations hand out deep copies; callers never share storage state.

type IBuildRepository interface {
	GetAll(ctx context.Context) ([]entities.Build, error)
	GetByID(ctx context.Context, id string) (entities.Build, error)
	Upsert(ctx context.Context, b entities.Build) (entities.Build, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, builds []entities.Build) error
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/domain/pricing"
	"woodshop_builds/internal/usecase/interfaces"
)

// DefaultStuckAfter is how long a job may sit in "rendering" before a tick
// reclaims it as failed. Covers processes that died mid-render; there is no
// cancellation primitive for an in-flight render.
const DefaultStuckAfter = 10 * time.Minute

// TickOutcome reports what a scheduler tick did for one build.
type TickOutcome struct {
	BuildID   string
	VersionID string
	RenderID  string
	View      entities.RenderView
	Started   bool
	Completed bool
	Failed    bool
	Reclaimed bool
}

// IRenderSchedulerUseCase drives render jobs for the current (index-0)
// version of a build, one at a time, through queued -> rendering ->
// complete|failed.

type IRenderSchedulerUseCase interface {
	Tick(ctx context.Context, buildID string) (TickOutcome, error)
	TickAll(ctx context.Context) error
}

type RenderSchedulerUseCase struct {
	repo       interfaces.IBuildRepository
	renderer   interfaces.IRenderer
	stuckAfter time.Duration
}

var _ IRenderSchedulerUseCase = (*RenderSchedulerUseCase)(nil)

func NewRenderSchedulerUseCase(repo interfaces.IBuildRepository, renderer interfaces.IRenderer, stuckAfter time.Duration) *RenderSchedulerUseCase {
	if stuckAfter <= 0 {
		stuckAfter = DefaultStuckAfter
	}
	return &RenderSchedulerUseCase{repo: repo, renderer: renderer, stuckAfter: stuckAfter}
}

// Tick advances at most one render job for the build's current version.
//
// The build is re-read fresh from the record store on entry: a note mutation
// may have replaced versions[0] with a new queued set since the last tick, and
// the scheduler must never act on a superseded version. The "rendering" mark
// is persisted before the renderer is invoked, so only one job per version is
// ever in flight; losing the compare-and-swap means another actor moved first
// and the tick is abandoned.
func (u *RenderSchedulerUseCase) Tick(ctx context.Context, buildID string) (TickOutcome, error) {
	buildID = strings.TrimSpace(buildID)
	if buildID == "" {
		return TickOutcome{}, ErrInvalidBuildID
	}

	b, err := u.repo.GetByID(ctx, buildID)
	if err != nil {
		return TickOutcome{}, err
	}
	if b.ID == "" {
		return TickOutcome{}, ErrBuildNotFound
	}
	cur := b.CurrentVersion()
	if cur == nil {
		return TickOutcome{BuildID: b.ID}, nil
	}
	out := TickOutcome{BuildID: b.ID, VersionID: cur.VersionID}

	now := time.Now().UTC()

	// An in-flight job blocks the queue. Reclaim it as failed once it has
	// been stuck past the deadline, otherwise just observe it.
	for i := range cur.Renders {
		j := &cur.Renders[i]
		if j.Status != entities.RenderStatusRendering {
			continue
		}
		if j.StartedAt != nil && now.Sub(*j.StartedAt) > u.stuckAfter {
			log.Printf("[render][scheduler] reclaiming stuck job build_id=%s render_id=%s view=%s started_at=%s", b.ID, j.RenderID, j.View, j.StartedAt.Format(time.RFC3339))
			j.Status = entities.RenderStatusFailed
			finished := now
			j.FinishedAt = &finished
			b.UpdatedAt = now
			if _, err := u.repo.Upsert(ctx, b); err != nil {
				if errors.Is(err, interfaces.ErrRevisionConflict) {
					return out, nil
				}
				return out, err
			}
			out.RenderID = j.RenderID
			out.View = j.View
			out.Reclaimed = true
			out.Failed = true
		}
		return out, nil
	}

	// Pick the first queued job in creation order (iso, front, top[, detail]).
	idx := -1
	for i := range cur.Renders {
		if cur.Renders[i].Status == entities.RenderStatusQueued {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out, nil
	}

	job := &cur.Renders[idx]
	job.Status = entities.RenderStatusRendering
	started := now
	job.StartedAt = &started
	b.UpdatedAt = now
	out.RenderID = job.RenderID
	out.View = job.View

	if _, err := u.repo.Upsert(ctx, b); err != nil {
		if errors.Is(err, interfaces.ErrRevisionConflict) {
			log.Printf("[render][scheduler] lost start race build_id=%s render_id=%s", b.ID, job.RenderID)
			return TickOutcome{BuildID: b.ID, VersionID: cur.VersionID}, nil
		}
		return out, err
	}
	out.Started = true

	snap := cur.InputsSnapshot
	imageURL, renderErr := u.renderer.Render(ctx, job.View, snap.Dims, snap.Options, snap.Notes)
	if renderErr != nil {
		log.Printf("[render][scheduler] render failed build_id=%s render_id=%s view=%s err=%v", b.ID, job.RenderID, job.View, renderErr)
	}

	if err := u.finishJob(ctx, b.ID, cur.VersionID, job.RenderID, imageURL, renderErr); err != nil {
		return out, err
	}
	out.Completed = renderErr == nil
	out.Failed = renderErr != nil
	return out, nil
}

// finishJob writes the render result back. The build is re-read because the
// render call has arbitrary latency and the record may have moved on; the
// version is located by id (it may no longer be index 0 — its jobs still
// finish, versions are immutable apart from render status).
func (u *RenderSchedulerUseCase) finishJob(ctx context.Context, buildID, versionID, renderID, imageURL string, renderErr error) error {
	for attempt := 0; attempt < maxUpsertRetries; attempt++ {
		b, err := u.repo.GetByID(ctx, buildID)
		if err != nil {
			return err
		}
		if b.ID == "" {
			// Deleted mid-render; drop the result.
			return nil
		}

		job := findRenderJob(&b, versionID, renderID)
		if job == nil {
			return nil
		}
		if job.Status != entities.RenderStatusRendering {
			// Already reclaimed or otherwise terminal; a job never moves
			// backward out of a terminal state.
			return nil
		}
		now := time.Now().UTC()
		finished := now
		job.FinishedAt = &finished
		if renderErr != nil {
			job.Status = entities.RenderStatusFailed
		} else {
			job.Status = entities.RenderStatusComplete
			job.ImageDataURL = imageURL
			ver := findVersion(&b, versionID)
			public := pricing.Estimate(ver.InputsSnapshot.Dims, ver.InputsSnapshot.Options)
			internal := pricing.EstimateInternal(ver.InputsSnapshot.Dims, ver.InputsSnapshot.Options)
			jobEstimate := public
			job.EstimatePublic = &jobEstimate
			ver.EstimatePublic = &public
			ver.EstimateInternal = &internal
		}
		b.UpdatedAt = now

		_, err = u.repo.Upsert(ctx, b)
		if errors.Is(err, interfaces.ErrRevisionConflict) {
			continue
		}
		return err
	}
	return ErrTooManyConflicts
}

// TickAll sweeps every build with pending render work. Per-build failures are
// logged and do not abort the sweep.
func (u *RenderSchedulerUseCase) TickAll(ctx context.Context) error {
	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, b := range all {
		if !hasPendingRenders(b) {
			continue
		}
		if _, err := u.Tick(ctx, b.ID); err != nil {
			log.Printf("[render][scheduler] tick failed build_id=%s err=%v", b.ID, err)
		}
	}
	return nil
}

func hasPendingRenders(b entities.Build) bool {
	cur := b.CurrentVersion()
	if cur == nil {
		return false
	}
	for _, j := range cur.Renders {
		if j.Status == entities.RenderStatusQueued || j.Status == entities.RenderStatusRendering {
			return true
		}
	}
	return false
}

func findVersion(b *entities.Build, versionID string) *entities.Version {
	for i := range b.Versions {
		if b.Versions[i].VersionID == versionID {
			return &b.Versions[i]
		}
	}
	return nil
}

func findRenderJob(b *entities.Build, versionID, renderID string) *entities.RenderJob {
	ver := findVersion(b, versionID)
	if ver == nil {
		return nil
	}
	for i := range ver.Renders {
		if ver.Renders[i].RenderID == renderID {
			return &ver.Renders[i]
		}
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/usecase/interfaces"
)

// ErrRemoteDisabled is returned by RestoreFromCloud when no remote mirror is
// configured. Sync never returns it; an unconfigured mirror just reports
// Enabled=false.
var ErrRemoteDisabled = errors.New("remote mirror not configured")

// SyncReport summarizes one reconciliation pass. Pulled counts remote values
// adopted locally (overwrites plus remote-only additions); Pushed counts
// records successfully sent to the remote.
type SyncReport struct {
	Enabled bool `json:"enabled"`
	Pulled  int  `json:"pulled"`
	Pushed  int  `json:"pushed"`
}

// ISyncUseCase reconciles the local record store with the remote mirror.
//
// Sync is best-effort last-writer-wins and never throws for remote trouble:
// an unconfigured mirror reports disabled, a failed fetch reports enabled
// with zero pulled. Restore is the explicit destructive path and does
// propagate fetch errors, since the caller asked to overwrite and needs to
// know it didn't happen.

type ISyncUseCase interface {
	Sync(ctx context.Context) (SyncReport, error)
	RestoreFromCloud(ctx context.Context) (int, error)
	Events(ctx context.Context) ([]entities.BackupEvent, error)
}

type SyncUseCase struct {
	repo   interfaces.IBuildRepository
	mirror interfaces.IRemoteMirror
	events interfaces.IBackupLogRepository
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(repo interfaces.IBuildRepository, mirror interfaces.IRemoteMirror, events interfaces.IBackupLogRepository) *SyncUseCase {
	return &SyncUseCase{repo: repo, mirror: mirror, events: events}
}

func (u *SyncUseCase) Sync(ctx context.Context) (SyncReport, error) {
	if u.mirror == nil || !u.mirror.Enabled() {
		return SyncReport{Enabled: false}, nil
	}
	report := SyncReport{Enabled: true}

	remote, err := u.mirror.FetchAll(ctx)
	if err != nil {
		// Transient remote failure must never destroy local data; report
		// "enabled but pulled 0" and leave the local store untouched.
		log.Printf("[sync][usecase] remote fetch failed, skipping merge err=%v", err)
		u.appendEvent(ctx, entities.BackupEventSync, report, "remote fetch failed")
		return report, nil
	}

	local, err := u.repo.GetAll(ctx)
	if err != nil {
		return report, err
	}

	remoteByID := make(map[string]entities.Build, len(remote))
	for _, r := range remote {
		remoteByID[r.ID] = r
	}
	localByID := make(map[string]entities.Build, len(local))
	for _, l := range local {
		localByID[l.ID] = l
	}

	// Last-writer-wins on UpdatedAt, ties favor local.
	merged := make([]entities.Build, 0, len(local)+len(remote))
	for _, l := range local {
		if r, ok := remoteByID[l.ID]; ok && r.UpdatedAt.After(l.UpdatedAt) {
			merged = append(merged, r)
			report.Pulled++
			continue
		}
		merged = append(merged, l)
	}
	for _, r := range remote {
		if _, ok := localByID[r.ID]; !ok {
			merged = append(merged, r)
			report.Pulled++
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].UpdatedAt.After(merged[j].UpdatedAt) })

	if err := u.repo.ReplaceAll(ctx, merged); err != nil {
		return report, err
	}

	// Push anything locally newer than (or absent from) the remote snapshot.
	// Per-record push failures are logged and skipped; push is best-effort.
	for _, b := range merged {
		r, ok := remoteByID[b.ID]
		if ok && !b.UpdatedAt.After(r.UpdatedAt) {
			continue
		}
		if err := u.mirror.Push(ctx, b); err != nil {
			log.Printf("[sync][usecase] push failed build_id=%s err=%v", b.ID, err)
			continue
		}
		report.Pushed++
	}

	log.Printf("[sync][usecase] sync done pulled=%d pushed=%d", report.Pulled, report.Pushed)
	u.appendEvent(ctx, entities.BackupEventSync, report, "")
	return report, nil
}

// RestoreFromCloud unconditionally replaces the local collection with the
// remote snapshot. No merge; local-only records do not survive.
func (u *SyncUseCase) RestoreFromCloud(ctx context.Context) (int, error) {
	if u.mirror == nil || !u.mirror.Enabled() {
		return 0, ErrRemoteDisabled
	}
	remote, err := u.mirror.FetchAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := u.repo.ReplaceAll(ctx, remote); err != nil {
		return 0, err
	}
	u.appendEvent(ctx, entities.BackupEventRestore, SyncReport{Enabled: true, Pulled: len(remote)}, "")
	return len(remote), nil
}

func (u *SyncUseCase) Events(ctx context.Context) ([]entities.BackupEvent, error) {
	if u.events == nil {
		return nil, nil
	}
	return u.events.List(ctx)
}

func (u *SyncUseCase) appendEvent(ctx context.Context, kind entities.BackupEventKind, report SyncReport, note string) {
	if u.events == nil {
		return
	}
	ev := entities.BackupEvent{
		At:     time.Now().UTC(),
		Kind:   kind,
		Pulled: report.Pulled,
		Pushed: report.Pushed,
		Note:   note,
	}
	if err := u.events.Append(ctx, ev); err != nil {
		log.Printf("[sync][usecase] backup log append failed err=%v", err)
	}
}

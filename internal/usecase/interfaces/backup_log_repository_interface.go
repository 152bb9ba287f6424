package interfaces

import (
	"context"

	"woodshop_builds/internal/domain/entities"
)

// IBackupLogRepository persists the capped backup/restore event log. Append
// discards the oldest entries once the cap is reached; List returns entries
// oldest first.

type IBackupLogRepository interface {
	Append(ctx context.Context, ev entities.BackupEvent) error
	List(ctx context.Context) ([]entities.BackupEvent, error)
}

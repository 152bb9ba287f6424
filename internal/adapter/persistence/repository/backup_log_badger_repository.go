package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/usecase/interfaces"

	"github.com/dgraph-io/badger/v4"
)

const backupLogKey = "backup_log"

const defaultBackupLogLimit = 50

// BackupLogBadgerRepository keeps the sync/restore audit log as one capped
// JSON array under a single key, oldest entries discarded first.

type BackupLogBadgerRepository struct {
	db    *badger.DB
	limit int
}

var _ interfaces.IBackupLogRepository = (*BackupLogBadgerRepository)(nil)

func NewBackupLogBadgerRepository(db *badger.DB) *BackupLogBadgerRepository {
	limit := defaultBackupLogLimit
	if v := getenvDefault("BACKUP_LOG_LIMIT", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return &BackupLogBadgerRepository{db: db, limit: limit}
}

func (r *BackupLogBadgerRepository) Append(ctx context.Context, ev entities.BackupEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		events := readBackupLog(txn)
		events = append(events, ev)
		if len(events) > r.limit {
			events = events[len(events)-r.limit:]
		}
		doc, err := json.Marshal(events)
		if err != nil {
			return fmt.Errorf("serialize backup log: %w", err)
		}
		return txn.Set([]byte(backupLogKey), doc)
	})
	if err != nil {
		return fmt.Errorf("append backup event: %w", err)
	}
	return nil
}

func (r *BackupLogBadgerRepository) List(ctx context.Context) ([]entities.BackupEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []entities.BackupEvent
	err := r.db.View(func(txn *badger.Txn) error {
		out = readBackupLog(txn)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read backup log: %w", err)
	}
	return out, nil
}

// readBackupLog returns the stored log, degrading an absent or unreadable
// entry to empty.
func readBackupLog(txn *badger.Txn) []entities.BackupEvent {
	item, err := txn.Get([]byte(backupLogKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("[backup][repo] read failed err=%v", err)
		return nil
	}
	var events []entities.BackupEvent
	_ = item.Value(func(val []byte) error {
		if uerr := json.Unmarshal(val, &events); uerr != nil {
			log.Printf("[backup][repo] unreadable log, resetting err=%v", uerr)
			events = nil
		}
		return nil
	})
	return events
}

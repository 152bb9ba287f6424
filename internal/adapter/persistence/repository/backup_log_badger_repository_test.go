package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/infrastructure/database"

	"github.com/dgraph-io/badger/v4"
)

func newTestBackupLogRepo(t *testing.T, limit int) *BackupLogBadgerRepository {
	t.Helper()
	db, err := database.OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := NewBackupLogBadgerRepository(db)
	if limit > 0 {
		repo.limit = limit
	}
	return repo
}

func TestBackupLogBadgerRepository_AppendAndList(t *testing.T) {
	repo := newTestBackupLogRepo(t, 0)
	ctx := context.Background()

	t.Run("empty log lists empty", func(t *testing.T) {
		events, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(events) != 0 {
			t.Fatalf("expected empty log, got %+v", events)
		}
	})

	t.Run("append preserves order", func(t *testing.T) {
		now := time.Now().UTC()
		for i := 0; i < 3; i++ {
			ev := entities.BackupEvent{At: now.Add(time.Duration(i) * time.Minute), Kind: entities.BackupEventSync, Pulled: i}
			if err := repo.Append(ctx, ev); err != nil {
				t.Fatalf("append %d: %v", i, err)
			}
		}
		events, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(events))
		}
		for i, ev := range events {
			if ev.Pulled != i {
				t.Fatalf("order broken at %d: %+v", i, ev)
			}
		}
	})
}

func TestBackupLogBadgerRepository_Cap(t *testing.T) {
	repo := newTestBackupLogRepo(t, 5)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		ev := entities.BackupEvent{Kind: entities.BackupEventSync, Note: fmt.Sprintf("pass-%d", i)}
		if err := repo.Append(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 5 {
		t.Fatalf("expected capped log of 5, got %d", len(events))
	}
	if events[0].Note != "pass-3" || events[4].Note != "pass-7" {
		t.Fatalf("expected oldest entries discarded, got %+v", events)
	}
}

func TestBackupLogBadgerRepository_CorruptLogResets(t *testing.T) {
	db, err := database.OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := NewBackupLogBadgerRepository(db)
	ctx := context.Background()

	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(backupLogKey), []byte("[broken"))
	})
	if err != nil {
		t.Fatalf("plant corrupt log: %v", err)
	}

	events, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("corrupt log must degrade, not fail: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty after corrupt read, got %+v", events)
	}

	if err := repo.Append(ctx, entities.BackupEvent{Kind: entities.BackupEventRestore}); err != nil {
		t.Fatalf("append over corrupt log: %v", err)
	}
	events, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 || events[0].Kind != entities.BackupEventRestore {
		t.Fatalf("expected fresh log with one event, got %+v", events)
	}
}

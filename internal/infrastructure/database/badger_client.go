package database

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// OpenBadger opens the local record store used as the durable source of
// truth for build documents.
//
// Supported env vars:
//   - BADGER_PATH (default: ./data/builds)
//
// SyncWrites stays on: a lost build record is unacceptable, so every upsert
// must hit disk before it reports success.
func OpenBadger() (*badger.DB, error) {
	path := getenvDefault("BADGER_PATH", "./data/builds")
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("create badger directory %s: %w", path, err)
	}

	opts := badger.DefaultOptions(path).
		WithSyncWrites(true).
		WithNumVersionsToKeep(1).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return db, nil
}

// OpenBadgerInMemory opens a throwaway in-memory store for tests.
func OpenBadgerInMemory() (*badger.DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger database: %w", err)
	}
	return db, nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/usecase/interfaces"

	"github.com/dgraph-io/badger/v4"
)

const buildKeyPrefix = "build/"

// BuildBadgerRepository is the local record store: one JSON document per
// build under the "build/" key prefix.
//
// Contract notes:
//   - Upsert is whole-document compare-and-swap on Rev, executed inside one
//     Badger transaction, so read-after-write holds for any later call on the
//     same store.
//   - Write/serialization failures always surface to the caller; unreadable
//     stored records degrade to "absent" on reads instead of failing the
//     whole collection.

type BuildBadgerRepository struct {
	db *badger.DB
}

var _ interfaces.IBuildRepository = (*BuildBadgerRepository)(nil)

func NewBuildBadgerRepository(db *badger.DB) *BuildBadgerRepository {
	return &BuildBadgerRepository{db: db}
}

func buildKey(id string) []byte {
	return []byte(buildKeyPrefix + id)
}

func (r *BuildBadgerRepository) GetAll(ctx context.Context) ([]entities.Build, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []entities.Build
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(buildKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var b entities.Build
				if err := json.Unmarshal(val, &b); err != nil {
					log.Printf("[builds][repo] skipping unreadable record key=%s err=%v", item.Key(), err)
					return nil
				}
				out = append(out, b)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan builds: %w", err)
	}
	return out, nil
}

func (r *BuildBadgerRepository) GetByID(ctx context.Context, id string) (entities.Build, error) {
	if err := ctx.Err(); err != nil {
		return entities.Build{}, err
	}

	var out entities.Build
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(buildKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &out); err != nil {
				log.Printf("[builds][repo] unreadable record id=%s err=%v", id, err)
				out = entities.Build{}
			}
			return nil
		})
	})
	if err != nil {
		return entities.Build{}, fmt.Errorf("get build %s: %w", id, err)
	}
	return out, nil
}

func (r *BuildBadgerRepository) Upsert(ctx context.Context, b entities.Build) (entities.Build, error) {
	if err := ctx.Err(); err != nil {
		return entities.Build{}, err
	}
	if b.ID == "" {
		return entities.Build{}, errors.New("build id is required")
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(buildKey(b.ID))
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			// Insert: no stored revision to compare against.
		case err != nil:
			return err
		default:
			var stored entities.Build
			verr := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &stored)
			})
			if verr == nil && stored.Rev != b.Rev {
				return interfaces.ErrRevisionConflict
			}
			// An unreadable stored record loses to the incoming write.
		}

		b.Rev++
		doc, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("serialize build %s: %w", b.ID, err)
		}
		return txn.Set(buildKey(b.ID), doc)
	})
	if errors.Is(err, badger.ErrConflict) {
		return entities.Build{}, interfaces.ErrRevisionConflict
	}
	if err != nil {
		return entities.Build{}, err
	}
	return b, nil
}

func (r *BuildBadgerRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(buildKey(id))
	})
	if err != nil {
		return fmt.Errorf("delete build %s: %w", id, err)
	}
	return nil
}

// ReplaceAll swaps the whole collection in one transaction. Reconciliation
// and restore own full-state writes, so no per-record CAS applies here.
func (r *BuildBadgerRepository) ReplaceAll(ctx context.Context, builds []entities.Build) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(buildKeyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		var stale [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()
		for _, k := range stale {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}

		for _, b := range builds {
			doc, err := json.Marshal(b)
			if err != nil {
				return fmt.Errorf("serialize build %s: %w", b.ID, err)
			}
			if err := txn.Set(buildKey(b.ID), doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace builds: %w", err)
	}
	return nil
}

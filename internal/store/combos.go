package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/outfitly/outfitly-server/internal/domain"
)

// Key prefixes for combination storage.
const (
	comboPrefix       = "combo:"           // combo:{id} → Combination JSON
	comboByNamePrefix = "idx:combos:name:" // idx:combos:name:{normalized name} → comboID
)

// Combination errors.
var (
	// ErrComboNotFound is returned when a combination cannot be found by ID or name.
	ErrComboNotFound = errors.New("combination not found")
	// ErrComboNameExists is returned when a comboName is already taken by another combination.
	ErrComboNameExists = errors.New("combination name already in use")
)

// CreateCombo inserts a new combination.
// The comboName is unique across the collection (case-insensitive).
func (s *Store) CreateCombo(ctx context.Context, c *domain.Combination) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(comboPrefix + c.ID)
	nameKey := []byte(comboByNamePrefix + normalizeKey(c.ComboName))

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(nameKey); err == nil {
			return ErrComboNameExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}

		return txn.Set(nameKey, []byte(c.ID))
	})
}

// GetCombo retrieves a combination by ID.
func (s *Store) GetCombo(ctx context.Context, id string) (*domain.Combination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var c domain.Combination
	if err := s.get([]byte(comboPrefix+id), &c); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrComboNotFound
		}
		return nil, err
	}

	return &c, nil
}

// GetComboByName retrieves a combination by its comboName (case-insensitive).
func (s *Store) GetComboByName(ctx context.Context, name string) (*domain.Combination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nameKey := []byte(comboByNamePrefix + normalizeKey(name))

	var comboID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(nameKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrComboNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			comboID = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return s.GetCombo(ctx, comboID)
}

// ListCombos returns all combinations matching the filter.
// The filter is applied in-scan; an empty filter matches every document.
func (s *Store) ListCombos(ctx context.Context, filter ComboFilter) ([]*domain.Combination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := []byte(comboPrefix)
	var combos []*domain.Combination

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchSize = 100

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var c domain.Combination
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &c)
			})
			if err != nil {
				return err
			}

			if filter.Matches(&c) {
				combos = append(combos, &c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Stable order for clients; Badger iterates by key, which is ID order anyway,
	// but name order reads better in listings.
	sort.Slice(combos, func(i, j int) bool {
		return normalizeKey(combos[i].ComboName) < normalizeKey(combos[j].ComboName)
	})

	return combos, nil
}

// UpdateCombo replaces the combination stored under id with c.
// Maintains the name index; returns ErrComboNotFound if id does not exist and
// ErrComboNameExists if the new name belongs to a different combination.
func (s *Store) UpdateCombo(ctx context.Context, id string, c *domain.Combination) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(comboPrefix + id)

	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrComboNotFound
		}
		if err != nil {
			return err
		}

		var old domain.Combination
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &old)
		}); err != nil {
			return err
		}

		oldNameKey := []byte(comboByNamePrefix + normalizeKey(old.ComboName))
		newNameKey := []byte(comboByNamePrefix + normalizeKey(c.ComboName))

		// Renaming: make sure the new name is free, then move the index entry.
		if normalizeKey(old.ComboName) != normalizeKey(c.ComboName) {
			if _, err := txn.Get(newNameKey); err == nil {
				return ErrComboNameExists
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			if err := txn.Delete(oldNameKey); err != nil {
				return err
			}
		}

		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}

		return txn.Set(newNameKey, []byte(id))
	})
}

// DeleteCombo removes a combination and its name index entry.
// Returns ErrComboNotFound if nothing was removed; deletion is physical.
func (s *Store) DeleteCombo(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(comboPrefix + id)

	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrComboNotFound
		}
		if err != nil {
			return err
		}

		var c domain.Combination
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &c)
		}); err != nil {
			return err
		}

		if err := txn.Delete(key); err != nil {
			return err
		}

		nameKey := []byte(comboByNamePrefix + normalizeKey(c.ComboName))
		if err := txn.Delete(nameKey); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		return nil
	})
}

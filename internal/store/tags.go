package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/outfitly/outfitly-server/internal/domain"
)

// Key prefixes for tag storage.
const (
	tagPrefix       = "tag:"           // tag:{id} → Tag JSON
	tagByNamePrefix = "idx:tags:name:" // idx:tags:name:{normalized name} → tagID
)

// Tag errors.
var (
	// ErrTagNotFound is returned when a tag cannot be found by ID or name.
	ErrTagNotFound = errors.New("tag not found")
	// ErrTagExists is returned when a tag name is already taken.
	ErrTagExists = errors.New("tag already exists")
)

// CreateTag creates a new tag. Names are unique (case-insensitive).
func (s *Store) CreateTag(ctx context.Context, t *domain.Tag) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	nameKey := []byte(tagByNamePrefix + normalizeKey(t.Name))

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(nameKey); err == nil {
			return ErrTagExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		data, err := json.Marshal(t)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(tagPrefix+t.ID), data); err != nil {
			return err
		}

		return txn.Set(nameKey, []byte(t.ID))
	})
}

// GetTag retrieves a tag by ID.
func (s *Store) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var t domain.Tag
	if err := s.get([]byte(tagPrefix+id), &t); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	return &t, nil
}

// GetTagByName retrieves a tag by name (case-insensitive).
func (s *Store) GetTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nameKey := []byte(tagByNamePrefix + normalizeKey(name))

	var tagID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(nameKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrTagNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			tagID = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return s.GetTag(ctx, tagID)
}

// GetTagsByNames looks up every tag whose name appears in names.
// Missing names are simply absent from the result map; the caller decides
// whether a partial resolution is an error.
func (s *Store) GetTagsByNames(ctx context.Context, names []string) (map[string]*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := make(map[string]*domain.Tag, len(names))

	err := s.db.View(func(txn *badger.Txn) error {
		for _, name := range names {
			nameKey := []byte(tagByNamePrefix + normalizeKey(name))

			item, err := txn.Get(nameKey)
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			var tagID string
			if err := item.Value(func(val []byte) error {
				tagID = string(val)
				return nil
			}); err != nil {
				return err
			}

			tagItem, err := txn.Get([]byte(tagPrefix + tagID))
			if err != nil {
				return err
			}

			var t domain.Tag
			if err := tagItem.Value(func(val []byte) error {
				return json.Unmarshal(val, &t)
			}); err != nil {
				return err
			}

			found[name] = &t
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// ListTags returns all tags ordered by name.
func (s *Store) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := []byte(tagPrefix)
	var tags []*domain.Tag

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchSize = 100

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var t domain.Tag
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &t)
			})
			if err != nil {
				return err
			}
			tags = append(tags, &t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tags, func(i, j int) bool {
		return normalizeKey(tags[i].Name) < normalizeKey(tags[j].Name)
	})

	return tags, nil
}

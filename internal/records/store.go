// Package records implements the ordered record collection shared by the
// report and shim-log stores: a JSON array behind a single key-value entry,
// newest first. Records are write-once — there is create and delete, never
// update — which matches the audit-log nature of field reports and
// measurement logs.
package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gasupport/internal/storage"
)

// Record is anything the store can hold; the id is used for deletion.
type Record interface {
	RecordID() string
}

// Store persists one collection of T under a fixed key.
type Store[T Record] struct {
	kv  storage.KV
	key string
}

func NewStore[T Record](kv storage.KV, key string) *Store[T] {
	return &Store[T]{kv: kv, key: key}
}

// List reads the collection fresh from the store on every call, newest
// first. An absent key is an empty collection.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	return s.decode(data)
}

// Prepend inserts rec at the head of the collection and persists the whole
// updated collection.
func (s *Store[T]) Prepend(ctx context.Context, rec T) error {
	return s.kv.Update(ctx, s.key, func(current []byte) ([]byte, error) {
		list, err := s.decode(current)
		if err != nil {
			return nil, err
		}
		return json.Marshal(append([]T{rec}, list...))
	})
}

// Delete removes the record with the given id, preserving the relative
// order of the rest. An unknown id is a no-op.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	return s.kv.Update(ctx, s.key, func(current []byte) ([]byte, error) {
		list, err := s.decode(current)
		if err != nil {
			return nil, err
		}
		kept := make([]T, 0, len(list))
		for _, r := range list {
			if r.RecordID() != id {
				kept = append(kept, r)
			}
		}
		return json.Marshal(kept)
	})
}

func (s *Store[T]) decode(data []byte) ([]T, error) {
	if data == nil {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.key, err)
	}
	return list, nil
}

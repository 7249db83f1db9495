package shimlogs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gasupport/internal/common"
	"github.com/dmitrijs2005/gasupport/internal/records"
	"github.com/dmitrijs2005/gasupport/internal/storage"
)

// Params carries the caller-provided fields for a new shim log entry.
type Params struct {
	MachineID string
	Before    Axes
	After     Axes
	Note      string
}

// Store is the shim log collection persisted under storage.ShimLogsKey,
// newest first.
type Store struct {
	records *records.Store[ShimLog]
}

func NewStore(kv storage.KV) *Store {
	return &Store{records: records.NewStore[ShimLog](kv, storage.ShimLogsKey)}
}

// List returns all entries, newest first, read fresh from the store.
func (s *Store) List(ctx context.Context) ([]ShimLog, error) {
	return s.records.List(ctx)
}

// Create validates p, computes the stored delta, assigns id and timestamp,
// prepends the entry to the persisted collection and returns it.
func (s *Store) Create(ctx context.Context, p Params) (*ShimLog, error) {
	if strings.TrimSpace(p.MachineID) == "" {
		return nil, fmt.Errorf("machine id is required: %w", common.ErrorValidation)
	}

	entry := ShimLog{
		ID:        uuid.NewString(),
		MachineID: p.MachineID,
		Before:    p.Before,
		After:     p.After,
		Delta:     ComputeDelta(p.Before, p.After),
		Note:      p.Note,
		Timestamp: time.Now().UTC(),
	}

	if err := s.records.Prepend(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes the entry with the given id; unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

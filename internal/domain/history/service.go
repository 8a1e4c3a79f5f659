// Package history manages the persisted QR code collection: one JSON blob
// in the key-value store holding the code list plus the two slot pointers,
// with an in-memory id index for point lookups.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"qure/internal/domain/qr"
	"qure/internal/infrastructure/storage"
)

// Service serializes every read-modify-write cycle behind a mutex, so two
// in-flight mutations cannot lose an update against each other. Reads fail
// open to an empty history; writes fail closed.
type Service struct {
	kv  storage.KV
	log *slog.Logger

	mu      sync.Mutex
	index   map[string]qr.Code
	indexed bool
}

func NewService(kv storage.KV, log *slog.Logger) *Service {
	return &Service{
		kv:  kv,
		log: log,
	}
}

// History returns the full persisted history. A missing key, a storage
// read failure or a corrupt blob all resolve to the empty history, so
// the read path never errors.
func (s *Service) History(ctx context.Context) (qr.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx), nil
}

// Save overwrites the whole blob. Unlike reads, a failed write surfaces to
// the caller: silently losing a save is worse than a visible failure.
func (s *Service) Save(ctx context.Context, h qr.History) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, h)
}

// Upsert replaces the record with the same id, refreshing UpdatedAt and
// preserving CreatedAt, or prepends the record when the id is new.
func (s *Service) Upsert(ctx context.Context, code qr.Code) (qr.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.loadLocked(ctx)

	replaced := false
	for i, existing := range h.Codes {
		if existing.ID == code.ID {
			code.CreatedAt = existing.CreatedAt
			code.UpdatedAt = time.Now().UnixMilli()
			h.Codes[i] = code
			replaced = true
			break
		}
	}
	if !replaced {
		h.Codes = append([]qr.Code{code}, h.Codes...)
	}

	if err := s.saveLocked(ctx, h); err != nil {
		return qr.History{}, err
	}
	return h, nil
}

// Delete removes the record and clears any slot pointing at it, in the
// same logical operation. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) (qr.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.loadLocked(ctx)

	codes := h.Codes[:0]
	for _, c := range h.Codes {
		if c.ID != id {
			codes = append(codes, c)
		}
	}
	h.Codes = codes

	if h.PrimarySlot != nil && *h.PrimarySlot == id {
		h.PrimarySlot = nil
	}
	if h.SecondarySlot != nil && *h.SecondarySlot == id {
		h.SecondarySlot = nil
	}

	if err := s.saveLocked(ctx, h); err != nil {
		return qr.History{}, err
	}
	return h, nil
}

// AssignSlot points the named slot at the given id, or clears it when id
// is nil. Assigning an id that is not in the history fails with
// ErrNotFound and writes nothing.
func (s *Service) AssignSlot(ctx context.Context, slot Slot, id *string) (qr.History, error) {
	if err := slot.Validate(); err != nil {
		return qr.History{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.loadLocked(ctx)

	if id != nil {
		found := false
		for _, c := range h.Codes {
			if c.ID == *id {
				found = true
				break
			}
		}
		if !found {
			return qr.History{}, fmt.Errorf("assign %s slot to %q: %w", slot, *id, ErrNotFound)
		}
	}

	switch slot {
	case SlotPrimary:
		h.PrimarySlot = id
	case SlotSecondary:
		h.SecondarySlot = id
	}

	if err := s.saveLocked(ctx, h); err != nil {
		return qr.History{}, err
	}
	return h, nil
}

// GetByID is an O(1) amortized point lookup through the id index. The
// index is built from the code list the first time it is needed and kept
// in sync by every mutation; a missing id returns nil, not an error.
func (s *Service) GetByID(ctx context.Context, id string) (*qr.Code, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.indexed {
		s.loadLocked(ctx)
	}

	if c, ok := s.index[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// loadLocked reads and decodes the history blob, migrating the legacy
// two-key layout on first contact. Callers must hold s.mu.
func (s *Service) loadLocked(ctx context.Context) qr.History {
	raw, ok, err := s.kv.Get(ctx, storage.KeyHistory)
	if err != nil {
		s.log.Warn("history read failed, falling back to empty", "error", err)
		s.reindex(qr.EmptyHistory())
		return qr.EmptyHistory()
	}

	if !ok {
		h := s.migrateLegacyLocked(ctx)
		s.reindex(h)
		return h
	}

	var h qr.History
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		s.log.Warn("history blob is corrupt, falling back to empty", "error", err)
		s.reindex(qr.EmptyHistory())
		return qr.EmptyHistory()
	}

	normalize(&h)
	s.reindex(h)
	return h
}

func (s *Service) saveLocked(ctx context.Context, h qr.History) error {
	normalize(&h)

	raw, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyHistory, string(raw)); err != nil {
		return fmt.Errorf("write history: %w", err)
	}

	s.reindex(h)
	return nil
}

// migrateLegacyLocked merges the abandoned list+index layout into the
// unified blob. The legacy keys are deleted only after the merged blob is
// safely written, so a failed write loses nothing.
func (s *Service) migrateLegacyLocked(ctx context.Context) qr.History {
	h := qr.EmptyHistory()

	rawList, okList, err := s.kv.Get(ctx, storage.KeyLegacyList)
	if err != nil {
		return h
	}
	rawIndex, okIndex, err := s.kv.Get(ctx, storage.KeyLegacyIndex)
	if err != nil {
		return h
	}
	if !okList && !okIndex {
		return h
	}

	if okList {
		var codes []qr.Code
		if err := json.Unmarshal([]byte(rawList), &codes); err == nil {
			h.Codes = codes
		}
	}

	if okIndex {
		var indexed map[string]qr.Code
		if err := json.Unmarshal([]byte(rawIndex), &indexed); err == nil {
			known := make(map[string]struct{}, len(h.Codes))
			for _, c := range h.Codes {
				known[c.ID] = struct{}{}
			}
			// Index entries missing from the list are still real records.
			for id, c := range indexed {
				if _, ok := known[id]; !ok {
					h.Codes = append(h.Codes, c)
				}
			}
		}
	}

	normalize(&h)

	raw, err := json.Marshal(h)
	if err != nil {
		return h
	}
	if err := s.kv.Set(ctx, storage.KeyHistory, string(raw)); err != nil {
		s.log.Warn("legacy history migration write failed, keeping legacy keys", "error", err)
		return h
	}

	_ = s.kv.Delete(ctx, storage.KeyLegacyList)
	_ = s.kv.Delete(ctx, storage.KeyLegacyIndex)
	s.log.Info("migrated legacy history layout", "codes", len(h.Codes))

	return h
}

func (s *Service) reindex(h qr.History) {
	s.index = make(map[string]qr.Code, len(h.Codes))
	for _, c := range h.Codes {
		s.index[c.ID] = c
	}
	s.indexed = true
}

// normalize enforces the blob invariants: a non-nil code list and no slot
// pointing outside it.
func normalize(h *qr.History) {
	if h.Codes == nil {
		h.Codes = []qr.Code{}
	}

	present := make(map[string]struct{}, len(h.Codes))
	for _, c := range h.Codes {
		present[c.ID] = struct{}{}
	}
	if h.PrimarySlot != nil {
		if _, ok := present[*h.PrimarySlot]; !ok {
			h.PrimarySlot = nil
		}
	}
	if h.SecondarySlot != nil {
		if _, ok := present[*h.SecondarySlot]; !ok {
			h.SecondarySlot = nil
		}
	}
}

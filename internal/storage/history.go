package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jonathan/placement-prep/internal/types"
)

// HistoryKey holds the analysis history, most recent first.
const HistoryKey = "prep_history"

// History is the recency-ordered list of past analyses. Writes through one
// History are serialized; separate processes sharing a store are not.
type History struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time
}

// NewHistory returns a History over store.
func NewHistory(store Store) *History {
	return &History{store: store, now: time.Now}
}

// Prepend stores a as the most recent entry.
func (h *History) Prepend(ctx context.Context, a *types.AnalysisResult) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.raw(ctx)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(a)
	if err != nil {
		return err
	}
	entries = append([]json.RawMessage{encoded}, entries...)
	return setJSON(ctx, h.store, HistoryKey, entries)
}

// List returns every well-formed entry, most recent first. Entries that are
// not objects or lack an id or JD text are skipped. An unreadable history
// reads as empty.
func (h *History) List(ctx context.Context) ([]*types.AnalysisResult, error) {
	entries, err := h.raw(ctx)
	if err != nil {
		var corrupt *CorruptValueError
		if errors.As(err, &corrupt) {
			log.Printf("[history] ignoring unreadable history: %v", corrupt)
			return []*types.AnalysisResult{}, nil
		}
		return nil, err
	}

	out := make([]*types.AnalysisResult, 0, len(entries))
	for _, e := range entries {
		var a types.AnalysisResult
		if err := json.Unmarshal(e, &a); err != nil {
			continue
		}
		if a.ID == "" || a.JDText == "" {
			continue
		}
		out = append(out, &a)
	}
	return out, nil
}

// Latest returns the most recent entry.
func (h *History) Latest(ctx context.Context) (*types.AnalysisResult, error) {
	list, err := h.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &NotFoundError{}
	}
	return list[0], nil
}

// Get returns the entry with id.
func (h *History) Get(ctx context.Context, id string) (*types.AnalysisResult, error) {
	list, err := h.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Update applies fn to the entry with id, stamps UpdatedAt and writes the
// history back. Malformed entries are dropped by the rewrite. If fn returns an
// error nothing is written.
func (h *History) Update(ctx context.Context, id string, fn func(*types.AnalysisResult) error) (*types.AnalysisResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	list, err := h.List(ctx)
	if err != nil {
		return nil, err
	}

	var target *types.AnalysisResult
	for _, a := range list {
		if a.ID == id {
			target = a
			break
		}
	}
	if target == nil {
		return nil, &NotFoundError{ID: id}
	}

	if err := fn(target); err != nil {
		return nil, err
	}
	target.UpdatedAt = h.now().UTC()

	if err := setJSON(ctx, h.store, HistoryKey, list); err != nil {
		return nil, err
	}
	return target, nil
}

// Clear removes the whole history.
func (h *History) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Delete(ctx, HistoryKey); err != nil {
		return &StoreError{Op: "delete", Key: HistoryKey, Cause: err}
	}
	return nil
}

// raw returns the stored entries without validating them.
func (h *History) raw(ctx context.Context) ([]json.RawMessage, error) {
	var entries []json.RawMessage
	if _, err := getJSON(ctx, h.store, HistoryKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

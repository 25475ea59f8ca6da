package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string) *types.AnalysisResult {
	return &types.AnalysisResult{
		ID:                 id,
		Company:            "Acme",
		JDText:             "Go developer",
		BaseScore:          50,
		SkillConfidenceMap: map[string]types.Confidence{"Go": types.ConfidencePractice},
		FinalScore:         48,
	}
}

func TestHistory_PrependOrdersByRecency(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(NewMemoryStore())

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, h.Prepend(ctx, entry(id)))
	}

	list, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "a", list[2].ID)

	latest, err := h.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c", latest.ID)

	got, err := h.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, types.ConfidencePractice, got.SkillConfidenceMap["Go"])
}

func TestHistory_EmptyAndMissing(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(NewMemoryStore())

	list, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = h.Latest(ctx)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Empty(t, nf.ID)

	_, err = h.Get(ctx, "nope")
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nope", nf.ID)
}

func TestHistory_ListSkipsMalformedEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	raw := `[{"id":"ok","jdText":"Go"},null,42,"text",{"id":"","jdText":"x"},{"id":"nojd"},{"id":"ok2","jdText":"SQL"}]`
	require.NoError(t, store.Set(ctx, HistoryKey, raw))

	list, err := NewHistory(store).List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ok", list[0].ID)
	assert.Equal(t, "ok2", list[1].ID)
}

func TestHistory_UnreadableHistoryReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, HistoryKey, "{not json"))
	h := NewHistory(store)

	list, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = h.Prepend(ctx, entry("a"))
	var corrupt *CorruptValueError
	assert.ErrorAs(t, err, &corrupt)
}

func TestHistory_Update(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	h := NewHistory(store)
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h.now = func() time.Time { return stamp }

	require.NoError(t, h.Prepend(ctx, entry("a")))
	require.NoError(t, h.Prepend(ctx, entry("b")))

	updated, err := h.Update(ctx, "a", func(a *types.AnalysisResult) error {
		a.SkillConfidenceMap["Go"] = types.ConfidenceKnow
		a.FinalScore = 52
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, stamp, updated.UpdatedAt)

	reloaded, err := h.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, types.ConfidenceKnow, reloaded.SkillConfidenceMap["Go"])
	assert.Equal(t, 52, reloaded.FinalScore)
	assert.Equal(t, stamp, reloaded.UpdatedAt)

	list, err := h.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", list[0].ID)
}

func TestHistory_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(NewMemoryStore())
	require.NoError(t, h.Prepend(ctx, entry("a")))

	_, err := h.Update(ctx, "missing", func(*types.AnalysisResult) error { return nil })
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)

	boom := errors.New("boom")
	_, err = h.Update(ctx, "a", func(a *types.AnalysisResult) error {
		a.FinalScore = 0
		return boom
	})
	require.ErrorIs(t, err, boom)

	unchanged, err := h.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 48, unchanged.FinalScore)
}

func TestHistory_Clear(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(NewMemoryStore())
	require.NoError(t, h.Prepend(ctx, entry("a")))

	require.NoError(t, h.Clear(ctx))

	list, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHistory_ConcurrentPrependKeepsEveryEntry(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(NewMemoryStore())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, h.Prepend(ctx, entry(fmt.Sprintf("e%d", i))))
		}(i)
	}
	wg.Wait()

	list, err := h.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

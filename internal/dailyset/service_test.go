package dailyset

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dailylearn/internal/clock"
	"github.com/abhisek/dailylearn/internal/store"
)

func TestService_TodaySetCachesResult(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	svc := NewService(kv, clock.Fixed(testDay), nil)

	first, err := svc.TodaySet(ctx, 4, 2)
	require.NoError(t, err)

	sets := store.NewCollection[DailySet](kv, store.KeyDailySets, nil).All(ctx)
	require.Len(t, sets, 1)
	assert.Equal(t, first.Set.ID, sets[0].ID)

	again, err := svc.TodaySet(ctx, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, first.Set.ID, again.Set.ID)
	require.Len(t, again.Questions, len(first.Questions))
	for i := range first.Questions {
		assert.Equal(t, first.Questions[i].ID, again.Questions[i].ID)
		assert.Equal(t, first.Questions[i].Metadata.SourceID, again.Questions[i].Metadata.SourceID)
	}
	assert.Equal(t, first.UsingFallbackCorpus, again.UsingFallbackCorpus)

	qs := store.NewCollection[Question](kv, store.KeyQuestions, nil).All(ctx)
	assert.Len(t, qs, first.Set.TotalQuestions, "cache hit must not append questions again")
}

func TestService_RegeneratesIncompleteCache(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	svc := NewService(kv, clock.Fixed(testDay), nil)

	first, err := svc.TodaySet(ctx, 1, 1)
	require.NoError(t, err)

	questions := store.NewCollection[Question](kv, store.KeyQuestions, nil)
	require.NoError(t, questions.Replace(ctx, first.Questions[:3]))

	_, ok := svc.Lookup(ctx, first.Set.ID)
	assert.False(t, ok)

	again, err := svc.TodaySet(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, again.Questions, first.Set.TotalQuestions)
	assert.Len(t, questions.All(ctx), first.Set.TotalQuestions)
	assert.Len(t, store.NewCollection[DailySet](kv, store.KeyDailySets, nil).All(ctx), 1)
}

func TestService_NewDayNewSet(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	a, err := NewService(kv, clock.Fixed(testDay), nil).TodaySet(ctx, 2, 1)
	require.NoError(t, err)
	b, err := NewService(kv, clock.Fixed(testDay.Add(24*time.Hour)), nil).TodaySet(ctx, 2, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a.Set.ID, b.Set.ID)
	idx := NewService(kv, clock.Fixed(testDay), nil).QuestionIndex(ctx)
	assert.Len(t, idx, a.Set.TotalQuestions+b.Set.TotalQuestions)
}

func TestService_InvalidGradeNotCached(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	svc := NewService(kv, clock.Fixed(testDay), nil)

	_, err := svc.TodaySet(ctx, 9, 1)
	require.ErrorIs(t, err, ErrInvalidGrade)
	assert.Empty(t, store.NewCollection[DailySet](kv, store.KeyDailySets, nil).All(ctx))
}

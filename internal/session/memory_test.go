package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bodyshop-chat/internal/booking"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(time.Minute)

	_, ok, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	s := booking.Session{ID: "a", Step: booking.StepService, Service: "Dent Repair"}
	require.NoError(t, m.Set(ctx, s))

	got, ok, err := m.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, s, got)

	require.NoError(t, m.Delete(ctx, "a"))
	_, ok, err = m.Get(ctx, "a")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := NewMemoryStore(10 * time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, booking.Session{ID: "a", Step: booking.StepStart}))

	now = now.Add(9 * time.Minute)
	_, ok, _ := m.Get(ctx, "a")
	require.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = m.Get(ctx, "a")
	require.False(t, ok)
	require.Zero(t, m.Len())
}

func TestMemoryStore_SetRefreshesExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := NewMemoryStore(10 * time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, booking.Session{ID: "a", Step: booking.StepStart}))
	now = now.Add(8 * time.Minute)
	require.NoError(t, m.Set(ctx, booking.Session{ID: "a", Step: booking.StepService}))
	now = now.Add(8 * time.Minute)

	got, ok, _ := m.Get(ctx, "a")
	require.True(t, ok)
	require.Equal(t, booking.StepService, got.Step)
}

func TestMemoryStore_RejectsEmptyID(t *testing.T) {
	require.Error(t, NewMemoryStore(0).Set(context.Background(), booking.Session{}))
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%5))
			_ = m.Set(ctx, booking.Session{ID: id, Step: booking.StepStart})
			_, _, _ = m.Get(ctx, id)
			if i%7 == 0 {
				_ = m.Delete(ctx, id)
			}
		}(i)
	}
	wg.Wait()
	require.LessOrEqual(t, m.Len(), 5)
}

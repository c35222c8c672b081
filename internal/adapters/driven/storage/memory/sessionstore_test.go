package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
)

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := &domain.Session{ID: "s-1", Rules: []string{"Le client doit payer."}}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Le client doit payer."}, got.Rules)
}

func TestSessionStore_SaveInvalid(t *testing.T) {
	store := NewSessionStore()
	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(context.Background(), &domain.Session{}), domain.ErrInvalidInput)
}

func TestSessionStore_GetNotFound(t *testing.T) {
	_, err := NewSessionStore().Get(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Session{ID: "s-1"}))

	require.NoError(t, store.Delete(ctx, "s-1"))
	require.NoError(t, store.Delete(ctx, "s-1"))

	_, err := store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_ListMostRecentFirst(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "old", UpdatedAt: base}))
	require.NoError(t, store.Save(ctx, &domain.Session{ID: "new", UpdatedAt: base.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, &domain.Session{ID: "also-old", UpdatedAt: base}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "also-old", list[1].ID)
	assert.Equal(t, "old", list[2].ID)
}

func TestSessionStore_Concurrency(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, &domain.Session{ID: "shared"})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSessionStore_CopiesOnSaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := &domain.Session{ID: "s-1", Rules: []string{"Si A alors B."}}
	require.NoError(t, store.Save(ctx, session))
	session.Rules = nil

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Si A alors B."}, got.Rules)

	got.Rules = []string{"Si C alors D."}
	again, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Si A alors B."}, again.Rules)
	assert.NotSame(t, got, again)
}

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vedant222005/Messmate/internal/cache"
	"github.com/Vedant222005/Messmate/internal/domain"
)

type stubLister struct {
	messes []*domain.Mess
	err    error
}

func (s *stubLister) ListAllActive(context.Context) ([]*domain.Mess, error) {
	return s.messes, s.err
}

func TestMessCache_LoadInitialData(t *testing.T) {
	t.Run("preloads active messes", func(t *testing.T) {
		lister := &stubLister{messes: []*domain.Mess{
			{ID: "mess-1", Name: "One", IsActive: true},
			{ID: "mess-2", Name: "Two", IsActive: true},
		}}
		c := cache.NewMessCache(lister, zap.NewNop())

		require.NoError(t, c.LoadInitialData(context.Background()))

		mess, found := c.Get("mess-1")
		assert.True(t, found)
		assert.Equal(t, "One", mess.Name)
		assert.Len(t, c.All(), 2)
	})

	t.Run("propagates lister failure", func(t *testing.T) {
		lister := &stubLister{err: errors.New("database error")}
		c := cache.NewMessCache(lister, zap.NewNop())

		assert.Error(t, c.LoadInitialData(context.Background()))
	})
}

func TestMessCache_Set(t *testing.T) {
	c := cache.NewMessCache(&stubLister{}, zap.NewNop())

	mess := &domain.Mess{ID: "mess-1", Name: "One", IsActive: true}
	c.Set(mess)

	got, found := c.Get("mess-1")
	require.True(t, found)
	assert.Equal(t, "One", got.Name)

	// cached value is a copy, mutating the source must not leak in
	mess.Name = "Changed"
	got, _ = c.Get("mess-1")
	assert.Equal(t, "One", got.Name)

	// deactivation evicts
	c.Set(&domain.Mess{ID: "mess-1", IsActive: false})
	_, found = c.Get("mess-1")
	assert.False(t, found)
}

func TestMessCache_All(t *testing.T) {
	c := cache.NewMessCache(&stubLister{}, zap.NewNop())

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	c.Set(&domain.Mess{ID: "old", IsActive: true, CreatedAt: base})
	c.Set(&domain.Mess{ID: "new", IsActive: true, CreatedAt: base.Add(time.Hour)})

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "old", all[1].ID)
}

func TestMessCache_Delete(t *testing.T) {
	c := cache.NewMessCache(&stubLister{}, zap.NewNop())

	c.Set(&domain.Mess{ID: "mess-1", IsActive: true})
	c.Delete("mess-1")

	_, found := c.Get("mess-1")
	assert.False(t, found)

	// deleting an absent id is a no-op
	c.Delete("mess-404")
}

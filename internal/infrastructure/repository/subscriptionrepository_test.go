package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/shared/logger"
)

func TestPlanRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	free, err := subscription.NewPlan("Free", "free", 0, 1, 2, 10)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, free))

	garage, err := subscription.NewPlan("Garage", "garage", 1900, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, garage))

	t.Run("get by slug", func(t *testing.T) {
		found, err := repo.GetBySlug(ctx, "free")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 1, found.MaxCars())
		assert.True(t, found.AllowsCars(0))
		assert.False(t, found.AllowsCars(1))
	})

	t.Run("unlimited plan allows everything", func(t *testing.T) {
		found, err := repo.GetBySlug(ctx, "garage")
		require.NoError(t, err)
		assert.True(t, found.AllowsCars(10000))
		assert.True(t, found.AllowsItems(10000))
	})

	t.Run("inactive plans excluded from active-only list", func(t *testing.T) {
		garage.Deactivate()
		require.NoError(t, repo.Update(ctx, garage))

		plans, err := repo.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, "free", plans[0].Slug())

		all, err := repo.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestSubscriptionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, logger.NewLogger())
	ctx := context.Background()

	sub, err := subscription.NewSubscription(1, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, sub))
	assert.NotZero(t, sub.ID())

	t.Run("active lookup finds it", func(t *testing.T) {
		found, err := repo.GetActiveByUserID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint(2), found.PlanID())
	})

	t.Run("cancel drops it from active lookup", func(t *testing.T) {
		require.NoError(t, sub.Cancel())
		require.NoError(t, repo.Update(ctx, sub))

		found, err := repo.GetActiveByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

func TestFavoriteAddListRemove(t *testing.T) {
	svc := NewFavoriteService(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "user-1", "prod-1"))
	require.NoError(t, svc.Add(ctx, "user-1", "prod-2"))

	// adding twice is a client error, the set stays a set
	err := svc.Add(ctx, "user-1", "prod-1")
	require.Error(t, err)
	assert.Equal(t, 400, utils.StatusOf(err))

	ids, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"prod-1", "prod-2"}, ids)

	fav, err := svc.IsFavorite(ctx, "user-1", "prod-1")
	require.NoError(t, err)
	assert.True(t, fav)

	require.NoError(t, svc.Remove(ctx, "user-1", "prod-1"))
	fav, err = svc.IsFavorite(ctx, "user-1", "prod-1")
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestFavoriteRemoveMissingIsRejected(t *testing.T) {
	svc := NewFavoriteService(cache.NewMemoryStore())

	err := svc.Remove(context.Background(), "user-1", "prod-9")
	require.Error(t, err)
	assert.Equal(t, 400, utils.StatusOf(err))
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

func phoneRequest(quantity int, color string) models.AddToCartRequest {
	return models.AddToCartRequest{
		ID:         "665f1c2ab1e2d3c4a5b6c7d8",
		Quantity:   quantity,
		Color:      color,
		Name:       "Galaxy S24",
		Brand:      "samsung",
		CargoPrice: 50,
		Price:      models.CartItemPrice{SellingPrice: 1000, Currency: "USD"},
	}
}

func TestAddItemNewLine(t *testing.T) {
	svc := NewCartService(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "user-1", phoneRequest(2, "black")))

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.ItemsCount)
	assert.Equal(t, float64(2050), cart.Items[0].Price.TotalPrice)
	assert.Len(t, cart.Items[0].CartID, 16)
}

func TestAddItemFreeCargoSkipsCargoPrice(t *testing.T) {
	svc := NewCartService(cache.NewMemoryStore())
	ctx := context.Background()

	req := phoneRequest(1, "black")
	req.FreeCargo = true
	require.NoError(t, svc.AddItem(ctx, "user-1", req))

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, float64(1000), cart.Items[0].Price.TotalPrice)
}

func TestAddItemMergesSameProductAndColor(t *testing.T) {
	svc := NewCartService(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "user-1", phoneRequest(1, "black")))
	require.NoError(t, svc.AddItem(ctx, "user-1", phoneRequest(2, "black")))

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, float64(3050), cart.Items[0].Price.TotalPrice)
}

func TestAddItemDifferentColorStaysSeparate(t *testing.T) {
	svc := NewCartService(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "user-1", phoneRequest(1, "black")))
	require.NoError(t, svc.AddItem(ctx, "user-1", phoneRequest(1, "white")))

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.ItemsCount)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	svc := NewCartService(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "user-1", phoneRequest(1, "black")))

	other, err := svc.GetCart(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestRemoveItem(t *testing.T) {
	svc := NewCartService(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "user-1", phoneRequest(1, "black")))
	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, "user-1", cart.Items[0].CartID))

	cart, err = svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveMissingItemReturnsNotFound(t *testing.T) {
	svc := NewCartService(cache.NewMemoryStore())

	err := svc.RemoveItem(context.Background(), "user-1", "nope")
	require.Error(t, err)
	assert.Equal(t, 404, utils.StatusOf(err))
}

func TestItemCountAndClear(t *testing.T) {
	svc := NewCartService(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "user-1", phoneRequest(2, "black")))
	require.NoError(t, svc.AddItem(ctx, "user-1", phoneRequest(3, "white")))

	count, err := svc.ItemCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	require.NoError(t, svc.Clear(ctx, "user-1"))
	count, err = svc.ItemCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

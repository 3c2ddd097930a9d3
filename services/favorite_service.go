package services

import (
	"context"
	"fmt"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// FavoriteService tracks each user's favorite products as a cache set of
// product ids.
type FavoriteService struct {
	store cache.Store
}

func NewFavoriteService(store cache.Store) *FavoriteService {
	return &FavoriteService{store: store}
}

// Add puts a product into the favorites set; favoriting the same product
// twice is rejected.
func (s *FavoriteService) Add(ctx context.Context, userID, productID string) error {
	key := cache.FavoriteKey(userID)
	exists, err := s.store.SIsMember(ctx, key, productID)
	if err != nil {
		return fmt.Errorf("check favorite: %w", err)
	}
	if exists {
		return utils.BadRequest("Product is already in favorites")
	}
	if err := s.store.SAdd(ctx, key, productID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove drops a product from the favorites set; removing a product that
// was never favorited is rejected the same way as a duplicate add.
func (s *FavoriteService) Remove(ctx context.Context, userID, productID string) error {
	removed, err := s.store.SRem(ctx, cache.FavoriteKey(userID), productID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	if removed == 0 {
		return utils.BadRequest("Product is not in favorites")
	}
	return nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, productID string) (bool, error) {
	return s.store.SIsMember(ctx, cache.FavoriteKey(userID), productID)
}

// List returns the favorited product ids; resolving them to product
// documents is the caller's business.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.store.SMembers(ctx, cache.FavoriteKey(userID))
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return ids, nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// CartService keeps each user's cart as one cache hash: the field is the
// cart item id, the value the serialized item. Carts never touch the
// document store.
type CartService struct {
	store cache.Store
}

func NewCartService(store cache.Store) *CartService {
	return &CartService{store: store}
}

// AddItem puts a product into the user's cart. Adding the same product in
// the same color merges into the existing line by summing quantities and
// recomputing the line total; any other combination becomes a new line.
func (s *CartService) AddItem(ctx context.Context, userID string, req models.AddToCartRequest) error {
	key := cache.CartKey(userID)

	existing, err := s.findLine(ctx, key, req.ID, req.Color)
	if err != nil {
		return err
	}

	item := models.CartItem{
		ID:           req.ID,
		Quantity:     req.Quantity,
		Color:        req.Color,
		Storage:      req.Storage,
		Name:         req.Name,
		CategoryName: req.CategoryName,
		Brand:        req.Brand,
		ProductSlug:  req.ProductSlug,
		DeliveryTime: req.DeliveryTime,
		Images:       req.Images,
		StoreName:    req.StoreName,
		CargoPrice:   req.CargoPrice,
		FreeCargo:    req.FreeCargo,
		Price: models.CartItemPrice{
			SellingPrice: req.Price.SellingPrice,
			Currency:     req.Price.Currency,
		},
		CreatedAt: time.Now(),
	}

	if existing != nil {
		item.CartID = existing.CartID
		item.Quantity = existing.Quantity + req.Quantity
		item.Price.TotalPrice = float64(item.Quantity)*req.Price.SellingPrice + req.CargoPrice
	} else {
		item.CartID = utils.DigitID(16)
		item.Price.TotalPrice = float64(req.Quantity) * req.Price.SellingPrice
		if !req.FreeCargo {
			item.Price.TotalPrice += req.CargoPrice
		}
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode cart item: %w", err)
	}
	if err := s.store.HSet(ctx, key, item.CartID, string(payload)); err != nil {
		return fmt.Errorf("store cart item: %w", err)
	}
	return nil
}

// GetCart returns every line of the user's cart with running totals.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.CartResponse, error) {
	items, err := s.items(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &models.CartResponse{Items: items}
	for _, item := range items {
		resp.ItemsCount += item.Quantity
		resp.Summary.TotalPrice += item.Price.TotalPrice
		resp.Summary.TotalCargoPrice += item.CargoPrice
		resp.Summary.Total += item.Price.TotalPrice + item.CargoPrice
	}
	return resp, nil
}

// RemoveItem deletes one cart line by its cart item id.
func (s *CartService) RemoveItem(ctx context.Context, userID, cartID string) error {
	key := cache.CartKey(userID)

	exists, err := s.store.HExists(ctx, key, cartID)
	if err != nil {
		return fmt.Errorf("check cart item: %w", err)
	}
	if !exists {
		return utils.NotFound("Product not found")
	}
	if err := s.store.HDel(ctx, key, cartID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// ItemCount sums the quantities across all cart lines.
func (s *CartService) ItemCount(ctx context.Context, userID string) (int, error) {
	items, err := s.items(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// Clear drops the whole cart, used after an order completes.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.store.Del(ctx, cache.CartKey(userID))
}

func (s *CartService) items(ctx context.Context, userID string) ([]models.CartItem, error) {
	fields, err := s.store.HGetAll(ctx, cache.CartKey(userID))
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	items := make([]models.CartItem, 0, len(fields))
	for _, raw := range fields {
		var item models.CartItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *CartService) findLine(ctx context.Context, key, productID, color string) (*models.CartItem, error) {
	fields, err := s.store.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	for _, raw := range fields {
		var item models.CartItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		if item.ID == productID && item.Color == color {
			return &item, nil
		}
	}
	return nil, nil
}

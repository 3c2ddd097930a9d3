package models

import "time"

// CartItem lives only in the cache (one hash per user, one field per item);
// it is never persisted to the document store.
type CartItem struct {
	ID           string        `json:"id"`
	CartID       string        `json:"cartId"`
	Quantity     int           `json:"quantity"`
	Color        string        `json:"color"`
	Storage      string        `json:"storage"`
	Name         string        `json:"name"`
	CategoryName string        `json:"categoryName"`
	Brand        string        `json:"brand"`
	ProductSlug  string        `json:"productSlug"`
	DeliveryTime int           `json:"deliveryTime"`
	Images       []string      `json:"images"`
	StoreName    string        `json:"storeName"`
	CargoPrice   float64       `json:"cargoPrice"`
	FreeCargo    bool          `json:"freeCargo"`
	Price        CartItemPrice `json:"price"`
	CreatedAt    time.Time     `json:"createAt"`
}

type CartItemPrice struct {
	SellingPrice float64 `json:"sellingPrice"`
	TotalPrice   float64 `json:"totalPrice"`
	Currency     string  `json:"currency"`
}

type AddToCartRequest struct {
	ID           string        `json:"id" binding:"required"`
	Quantity     int           `json:"quantity" binding:"required,min=1"`
	Color        string        `json:"color"`
	Storage      string        `json:"storage"`
	Name         string        `json:"name" binding:"required"`
	CategoryName string        `json:"categoryName"`
	Brand        string        `json:"brand"`
	ProductSlug  string        `json:"productSlug"`
	DeliveryTime int           `json:"deliveryTime"`
	Images       []string      `json:"images"`
	StoreName    string        `json:"storeName"`
	CargoPrice   float64       `json:"cargoPrice"`
	FreeCargo    bool          `json:"freeCargo"`
	Price        CartItemPrice `json:"price" binding:"required"`
}

// CartSummary aggregates the running totals of a user's cart.
type CartSummary struct {
	TotalPrice      float64 `json:"totalPrice"`
	TotalCargoPrice float64 `json:"totalCargoPrice"`
	Total           float64 `json:"total"`
}

type CartResponse struct {
	ItemsCount int         `json:"itemsCount"`
	Items      []CartItem  `json:"items"`
	Summary    CartSummary `json:"summary"`
}

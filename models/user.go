package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
)

type Customer struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	FirstName string               `json:"firstName" bson:"firstName"`
	LastName  string               `json:"lastName" bson:"lastName"`
	Phone     string               `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string               `json:"email" bson:"email"`
	Password  string               `json:"-" bson:"password"`
	Role      string               `json:"role" bson:"role"`
	Address   []primitive.ObjectID `json:"address" bson:"address"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

func (Customer) Collection() string { return "customers" }

type Seller struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	FirstName string               `json:"firstName" bson:"firstName"`
	LastName  string               `json:"lastName" bson:"lastName"`
	Phone     string               `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string               `json:"email" bson:"email"`
	Password  string               `json:"-" bson:"password"`
	Role      string               `json:"role" bson:"role"`
	StoreID   primitive.ObjectID   `json:"storeId" bson:"storeId,omitempty"`
	Address   []primitive.ObjectID `json:"address" bson:"address"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

func (Seller) Collection() string { return "sellers" }

type Store struct {
	ID                primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	StoreName         string             `json:"storeName" bson:"storeName"`
	StoreDescription  string             `json:"storeDescription" bson:"storeDescription"`
	StoreLogo         string             `json:"storeLogo" bson:"storeLogo"`
	StoreBanner       string             `json:"storeBanner,omitempty" bson:"storeBanner,omitempty"`
	StoreRating       float64            `json:"storeRating" bson:"storeRating"`
	CargoDeliveryTime string             `json:"cargoDeliveryTime,omitempty" bson:"cargoDeliveryTime,omitempty"`
	SellerID          primitive.ObjectID `json:"sellerId" bson:"sellerId"`
}

func (Store) Collection() string { return "stores" }

// ═══════════════════════════════════════════════════════════
// Auth request models
// ═══════════════════════════════════════════════════════════

type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=8"`
	StoreName string `json:"storeName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

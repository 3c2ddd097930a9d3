package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand carries a short public digit id next to the Mongo id so storefront
// URLs never expose object ids.
type Brand struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Brand     string             `json:"brand" bson:"brand"`
	BrandSlug string             `json:"brandSlug" bson:"brandSlug"`
	BrandID   string             `json:"brandId" bson:"brandId"`
	LogoImage string             `json:"logoImage,omitempty" bson:"logoImage,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (Brand) Collection() string { return "brands" }

type CreateBrandRequest struct {
	Brand     string `json:"brand" binding:"required"`
	LogoImage string `json:"logoImage"`
}

// BrandSummary is the public projection returned by the brand listing.
type BrandSummary struct {
	Brand     string `json:"brand" bson:"brand"`
	BrandSlug string `json:"brandSlug" bson:"brandSlug"`
	BrandID   string `json:"brandId" bson:"brandId"`
	LogoImage string `json:"logoImage,omitempty" bson:"logoImage,omitempty"`
}

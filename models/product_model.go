package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductModel groups sellable products under one manufacturer model
// (e.g. every colour/storage combination of the same phone).
type ProductModel struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Model      string             `json:"model" bson:"model"`
	ModelSlug  string             `json:"modelSlug" bson:"modelSlug"`
	BrandID    primitive.ObjectID `json:"brandId" bson:"brandId"`
	CategoryID primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (ProductModel) Collection() string { return "productmodels" }

type CreateProductModelRequest struct {
	Model        string `json:"model" binding:"required,max=100"`
	Brand        string `json:"brand"`
	BrandSlug    string `json:"brandSlug"`
	Category     string `json:"category"`
	CategorySlug string `json:"categorySlug"`
}

// ProductModelSummary is the per-category projection (model + slug only).
type ProductModelSummary struct {
	Model     string `json:"model" bson:"model"`
	ModelSlug string `json:"modelSlug" bson:"modelSlug"`
}

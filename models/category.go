package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a reference entity; the slug is derived from the name once at
// creation and never changes afterwards.
type Category struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Category     string             `json:"category" bson:"category"`
	CategorySlug string             `json:"categorySlug" bson:"categorySlug"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (Category) Collection() string { return "categories" }

type CreateCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId"`
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	Rating     int                `json:"rating" bson:"rating"`
	Review     string             `json:"review" bson:"review"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (Review) Collection() string { return "reviews" }

type CreateReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=0,max=5"`
	Review string `json:"review" binding:"required"`
}

type UpdateReviewRequest struct {
	Rating *int    `json:"rating" binding:"omitempty,min=0,max=5"`
	Review *string `json:"review"`
}

// ReviewWithAuthor is the listing projection with reviewer and product
// fields joined in.
type ReviewWithAuthor struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Rating      int                `json:"rating" bson:"rating"`
	Review      string             `json:"review" bson:"review"`
	FirstName   string             `json:"firstName" bson:"firstName"`
	LastName    string             `json:"lastName" bson:"lastName"`
	ProductSlug string             `json:"productSlug" bson:"productSlug"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

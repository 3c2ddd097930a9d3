package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ═══════════════════════════════════════════════════════════
// Nested document types
// ═══════════════════════════════════════════════════════════

type ProductPrice struct {
	DiscountedPrice float64 `json:"discountedPrice" bson:"discountedPrice" binding:"required,min=0"`
	OriginalPrice   float64 `json:"originalPrice" bson:"originalPrice" binding:"required,min=0"`
	SellingPrice    float64 `json:"sellingPrice" bson:"sellingPrice" binding:"required,min=0"`
}

type Dimensions struct {
	Width   float64 `json:"width" bson:"width"`
	Height  float64 `json:"height" bson:"height"`
	Depth   float64 `json:"depth" bson:"depth"`
	Summary string  `json:"summary,omitempty" bson:"summary,omitempty"`
}

// RatingCount is one bucket of the per-star rating histogram.
type RatingCount struct {
	Rate  int `json:"rate" bson:"rate"`
	Count int `json:"count" bson:"count"`
}

// NewRatingsCount seeds the histogram with one zero bucket per star value,
// five down to one. Every product carries exactly these five buckets from
// the moment it is created.
func NewRatingsCount() []RatingCount {
	ratings := make([]RatingCount, 0, 5)
	for rate := 5; rate >= 1; rate-- {
		ratings = append(ratings, RatingCount{Rate: rate, Count: 0})
	}
	return ratings
}

// ═══════════════════════════════════════════════════════════
// Main Product document
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ProductSlug      string             `json:"productSlug" bson:"productSlug"`
	NoticeID         string             `json:"noticeId" bson:"noticeId"`
	Name             string             `json:"name" bson:"name"`
	BrandID          primitive.ObjectID `json:"brandId" bson:"brandId"`
	ModelID          primitive.ObjectID `json:"modelId" bson:"modelId"`
	CategoryID       primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	SellerID         primitive.ObjectID `json:"sellerId" bson:"sellerId"`
	FeaturesID       primitive.ObjectID `json:"featuresId" bson:"featuresId,omitempty"`
	NumberOfOrders   int                `json:"numberOfOrders" bson:"numberOfOrders"`
	Price            ProductPrice       `json:"price" bson:"price"`
	Description      string             `json:"description" bson:"description"`
	QuantityOfStock  int                `json:"quantityOfStock" bson:"quantityOfStock"`
	Images           []string           `json:"images" bson:"images"`
	Weight           string             `json:"weight,omitempty" bson:"weight,omitempty"`
	Dimensions       *Dimensions        `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	GuarantyTime     int                `json:"guarantyTime" bson:"guarantyTime"`
	GuarantyType     string             `json:"guarantyType" bson:"guarantyType"`
	NumberOfComments int                `json:"numberOfComments" bson:"numberOfComments"`
	NumberOfRating   int                `json:"numberOfRating" bson:"numberOfRating"`
	RatingsCount     []RatingCount      `json:"ratingsCount" bson:"ratingsCount"`
	AverageRating    float64            `json:"averageRating" bson:"averageRating"`
	CargoPrice       float64            `json:"cargoPrice" bson:"cargoPrice"`
	FreeCargo        bool               `json:"freeCargo" bson:"freeCargo"`
	SaleCount        int                `json:"saleCount" bson:"saleCount"`
	DeliveryTime     int                `json:"deliveryTime" bson:"deliveryTime"`
	ViewCount        int                `json:"viewCount" bson:"viewCount"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (Product) Collection() string { return "products" }

// ═══════════════════════════════════════════════════════════
// Request models
// ═══════════════════════════════════════════════════════════

type CreateProductRequest struct {
	Name            string          `json:"name" binding:"required,max=100"`
	Brand           string          `json:"brand" binding:"required"`
	Model           string          `json:"model" binding:"required"`
	Category        string          `json:"category" binding:"required"`
	Price           ProductPrice    `json:"price" binding:"required"`
	Description     string          `json:"description" binding:"required,max=1000"`
	QuantityOfStock int             `json:"quantityOfStock" binding:"required,min=0"`
	Images          []string        `json:"images" binding:"required"`
	GuarantyTime    int             `json:"guarantyTime" binding:"min=0"`
	GuarantyType    string          `json:"guarantyType" binding:"required,oneof=importer manufacturer none"`
	CargoPrice      float64         `json:"cargoPrice" binding:"min=0"`
	FreeCargo       bool            `json:"freeCargo"`
	DeliveryTime    int             `json:"deliveryTime" binding:"required,min=0"`
	Features        FeaturesRequest `json:"features" binding:"required"`
}

// UpdateProductRequest carries the allow-listed mutable fields. Identity and
// rating aggregates are never writable through the update endpoint.
type UpdateProductRequest struct {
	Name            *string       `json:"name"`
	Price           *ProductPrice `json:"price"`
	Description     *string       `json:"description"`
	QuantityOfStock *int          `json:"quantityOfStock" binding:"omitempty,min=0"`
	Images          *[]string     `json:"images"`
	GuarantyTime    *int          `json:"guarantyTime" binding:"omitempty,min=0"`
	GuarantyType    *string       `json:"guarantyType" binding:"omitempty,oneof=importer manufacturer none"`
	CargoPrice      *float64      `json:"cargoPrice" binding:"omitempty,min=0"`
	FreeCargo       *bool         `json:"freeCargo"`
	DeliveryTime    *int          `json:"deliveryTime" binding:"omitempty,min=0"`
}

// ═══════════════════════════════════════════════════════════
// Response models
// ═══════════════════════════════════════════════════════════

// ProductSummary is the fixed listing projection produced by the product
// aggregation pipeline. Storage and RAM come from joined feature documents
// and may be absent for categories without hardware features.
type ProductSummary struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id"`
	Name             string             `json:"name" bson:"name"`
	Brand            string             `json:"brand" bson:"brand"`
	Price            float64            `json:"price" bson:"price"`
	CargoPrice       float64            `json:"cargoPrice" bson:"cargoPrice"`
	Category         string             `json:"category" bson:"category"`
	Model            string             `json:"model" bson:"model"`
	ProductSlug      string             `json:"productSlug" bson:"productSlug"`
	Storage          interface{}        `json:"storage" bson:"storage"`
	Images           []string           `json:"images" bson:"images"`
	RAM              interface{}        `json:"ram" bson:"ram"`
	Color            string             `json:"color" bson:"color"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	NumberOfRating   int                `json:"numberOfRating" bson:"numberOfRating"`
	FreeCargo        bool               `json:"freeCargo" bson:"freeCargo"`
	NumberOfComments int                `json:"numberOfComments" bson:"numberOfComments"`
	URL              string             `json:"url" bson:"url"`
}

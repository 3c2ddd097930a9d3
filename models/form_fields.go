package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FormField describes one input control of the dynamic product form a
// seller fills in for a given category.
type FormField struct {
	Type    string `json:"type" bson:"type"`
	FieldID string `json:"id" bson:"id"`
	Label   string `json:"label" bson:"label"`
	TagName string `json:"tagName,omitempty" bson:"tagName,omitempty"`
}

type FormFields struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CategoryID primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	Category   string             `json:"category" bson:"category"`
	Fields     []FormField        `json:"fields" bson:"fields"`
}

func (FormFields) Collection() string { return "formfields" }

type CreateFormFieldsRequest struct {
	Category string      `json:"category" binding:"required"`
	Fields   []FormField `json:"fields" binding:"required,dive"`
}

// CachedFormFields is the JSON payload mirrored into the cache.
type CachedFormFields struct {
	Category string      `json:"category"`
	Fields   []FormField `json:"fields"`
}

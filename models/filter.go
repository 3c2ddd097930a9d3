package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FilterDescriptor is one precomputed facet: every distinct value a
// filterable attribute takes within a category, plus its display labels.
type FilterDescriptor struct {
	FilterName            string        `json:"filterName" bson:"filterName"`
	BeautifulFilterName   string        `json:"beautifulFilterName" bson:"beautifulFilterName"`
	FilterValues          []interface{} `json:"filterValues" bson:"filterValues"`
	BeautifulFilterValues []interface{} `json:"beautifulFilterValues" bson:"beautifulFilterValues"`
	AppendixName          []string      `json:"appendixName,omitempty" bson:"appendixName,omitempty"`
}

// Filter is the persisted facet set for one category. It is created and
// replaced wholesale by the admin precompute endpoint; there is no partial
// update path.
type Filter struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CategoryID primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	Category   string             `json:"category" bson:"category"`
	Filters    []FilterDescriptor `json:"filters" bson:"filters"`
}

func (Filter) Collection() string { return "filters" }

// FilterRequestItem names one attribute the admin wants a facet for.
// AppendixName carries the unit suffixes for display values (fine unit
// first, coarse unit second for storage capacities).
type FilterRequestItem struct {
	FilterName          string   `json:"filterName" binding:"required"`
	BeautifulFilterName string   `json:"beautifulFilterName" binding:"required"`
	AppendixName        []string `json:"appendixName"`
}

type CreateFilterRequest struct {
	Category string              `json:"category" binding:"required"`
	Filters  []FilterRequestItem `json:"filters" binding:"required,dive"`
}

// CachedFilter is the JSON payload mirrored into the cache under the
// category-scoped key.
type CachedFilter struct {
	Category string             `json:"category"`
	Filters  []FilterDescriptor `json:"filters"`
}

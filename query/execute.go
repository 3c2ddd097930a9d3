package query

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/models"
)

const (
	DefaultLimit = 100
	DefaultPage  = 1
)

// PageInfo describes the slice of the result set a listing response covers.
type PageInfo struct {
	Limit       int   `json:"limit"`
	Skip        int   `json:"skip"`
	Page        int   `json:"page"`
	NextPage    *int  `json:"nextPage"`
	PrevPage    int   `json:"prevPage"`
	Length      int   `json:"length"`
	TotalLength int64 `json:"totalLength"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// Result is the paginated outcome of a product listing query.
type Result struct {
	Docs []models.ProductSummary `json:"docs"`
	PageInfo
}

// Executor runs compiled listing queries against the product collection.
// The database handle is injected so tests can point it at a scratch
// database or skip it entirely for the pure stages.
type Executor struct {
	db *mongo.Database
}

func NewExecutor(db *mongo.Database) *Executor {
	return &Executor{db: db}
}

// BuildListingPipeline assembles the aggregation pipeline for product
// listings: join features, model, brand and category onto each product,
// apply the match conditions, project the fixed summary shape, then sort.
// Sorting happens after projection, so sort fields refer to projected names
// ("price" is the projected selling price, not the embedded price document).
func BuildListingPipeline(match bson.M, sortSpec bson.D) mongo.Pipeline {
	if sortSpec == nil {
		sortSpec = bson.D{{Key: "createdAt", Value: -1}}
	}

	pipeline := mongo.Pipeline{
		lookupStage("features", "featuresId", "_id", "features"),
		unwindStage("$features"),
		lookupStage("productmodels", "modelId", "_id", "model"),
		unwindStage("$model"),
		lookupStage("brands", "brandId", "_id", "brand"),
		unwindStage("$brand"),
		lookupStage("categories", "categoryId", "_id", "category"),
		unwindStage("$category"),
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":              1,
			"name":             1,
			"brand":            "$brand.brand",
			"price":            "$price.sellingPrice",
			"cargoPrice":       "$cargoPrice",
			"category":         "$category.category",
			"model":            "$model.model",
			"productSlug":      "$productSlug",
			"storage":          "$features.basicHardware.internalStorage",
			"images":           "$images",
			"ram":              "$features.basicHardware.ram",
			"color":            "$features.design.color",
			"createdAt":        1,
			"numberOfRating":   1,
			"freeCargo":        1,
			"numberOfComments": 1,
			"url": bson.M{"$concat": bson.A{"/product/", "$brand.brand", "/", "$productSlug"}},
		}}},
		bson.D{{Key: "$sort", Value: sortSpec}},
	}

	return pipeline
}

func lookupStage(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": foreignField,
		"as":           as,
	}}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: path}}
}

// Execute runs the listing pipeline and paginates the result in memory.
// Pagination parameters ride in the same normalized map as the filters.
func (e *Executor) Execute(ctx context.Context, compiled Compiled, params map[string]Value) (*Result, error) {
	limit := paramInt(params, "limit", DefaultLimit)
	page := paramInt(params, "page", DefaultPage)
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = DefaultPage
	}

	coll := e.db.Collection(models.Product{}.Collection())

	cursor, err := coll.Aggregate(ctx, BuildListingPipeline(compiled.Match, compiled.Sort))
	if err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.ProductSummary
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	totalLength, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	slice := pageSlice(docs, page, limit)

	result := &Result{
		Docs:     slice,
		PageInfo: buildPageInfo(page, limit, len(slice), totalLength),
	}
	return result, nil
}

func paramInt(params map[string]Value, key string, def int) int {
	v, ok := params[key]
	if !ok || v.Kind != Number {
		return def
	}
	return v.Num
}

func pageSlice(docs []models.ProductSummary, page, limit int) []models.ProductSummary {
	skip := (page - 1) * limit
	if skip >= len(docs) {
		return []models.ProductSummary{}
	}
	end := skip + limit
	if end > len(docs) {
		end = len(docs)
	}
	return docs[skip:end]
}

// buildPageInfo mirrors the storefront's historical pagination contract.
// Length counts the current slice, totalLength counts the whole collection
// regardless of filters, and totalPages derives from the slice length, so
// hasNextPage only reflects whether the current slice filled a whole page.
// Clients depend on these exact fields; fix them here and in the clients
// together or not at all.
func buildPageInfo(page, limit, sliceLen int, totalLength int64) PageInfo {
	totalPages := (sliceLen + limit - 1) / limit

	info := PageInfo{
		Limit:       limit,
		Skip:        (page - 1) * limit,
		Page:        page,
		Length:      sliceLen,
		TotalLength: totalLength,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: totalPages > page,
		HasPrevPage: page > 1,
		PrevPage:    1,
	}
	if page > 1 {
		info.PrevPage = page - 1
	}
	if totalPages > page {
		next := page + 1
		info.NextPage = &next
	}
	return info
}

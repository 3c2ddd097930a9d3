package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/query"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// FilterService precomputes the facet sets a storefront category page offers
// and serves them cache-first. Facets are keyed by category slug in both the
// filters collection and the cache.
type FilterService struct {
	db    *mongo.Database
	store cache.Store
}

func NewFilterService(db *mongo.Database, store cache.Store) *FilterService {
	return &FilterService{db: db, store: store}
}

// BuildFilters recomputes the facet set for a category from its current
// products, replaces the persisted filter document and refreshes the cache
// mirror. Requested filter names absent from the key map are skipped.
func (s *FilterService) BuildFilters(ctx context.Context, req models.CreateFilterRequest) (*models.Filter, error) {
	var category models.Category
	err := s.db.Collection(models.Category{}.Collection()).
		FindOne(ctx, bson.M{"categorySlug": req.Category}).
		Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}

	keyMap := query.BuildKeyMap()
	filters := make([]models.FilterDescriptor, 0, len(req.Filters))

	for _, item := range req.Filters {
		path, ok := keyMap[item.FilterName]
		if !ok {
			continue
		}

		if query.IsBooleanKey(item.FilterName) {
			filters = append(filters, BoolFacetDescriptor(item))
			continue
		}

		values, err := s.distinctValues(ctx, category.ID, path)
		if err != nil {
			return nil, err
		}
		filters = append(filters, BuildFacetDescriptor(item, values))
	}

	doc := models.Filter{
		CategoryID: category.ID,
		Category:   category.CategorySlug,
		Filters:    filters,
	}

	_, err = s.db.Collection(models.Filter{}.Collection()).ReplaceOne(
		ctx,
		bson.M{"categoryId": category.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("store filters: %w", err)
	}

	if err := s.cacheFilters(ctx, category.CategorySlug, filters); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetFilters returns the facet set for a category slug, reading the cache
// first and falling back to the filters collection, repopulating the cache
// on the way out.
func (s *FilterService) GetFilters(ctx context.Context, categorySlug string) (*models.CachedFilter, error) {
	raw, hit, err := s.store.Get(ctx, cache.FilterKey(categorySlug))
	if err != nil {
		return nil, fmt.Errorf("read filter cache: %w", err)
	}
	if hit {
		var cached models.CachedFilter
		if err := json.Unmarshal([]byte(raw), &cached); err != nil {
			return nil, fmt.Errorf("decode cached filters: %w", err)
		}
		return &cached, nil
	}

	var doc models.Filter
	err = s.db.Collection(models.Filter{}.Collection()).
		FindOne(ctx, bson.M{"category": categorySlug}).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find filters: %w", err)
	}

	if err := s.cacheFilters(ctx, categorySlug, doc.Filters); err != nil {
		return nil, err
	}
	return &models.CachedFilter{Category: categorySlug, Filters: doc.Filters}, nil
}

func (s *FilterService) cacheFilters(ctx context.Context, categorySlug string, filters []models.FilterDescriptor) error {
	payload, err := json.Marshal(models.CachedFilter{Category: categorySlug, Filters: filters})
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}
	// precomputed facets never expire; the next rebuild overwrites them
	if err := s.store.Set(ctx, cache.FilterKey(categorySlug), string(payload), 0); err != nil {
		return fmt.Errorf("cache filters: %w", err)
	}
	return nil
}

func (s *FilterService) distinctValues(ctx context.Context, categoryID primitive.ObjectID, path string) ([]interface{}, error) {
	cursor, err := s.db.Collection(models.Product{}.Collection()).
		Aggregate(ctx, query.BuildFacetPipeline(categoryID, path))
	if err != nil {
		return nil, fmt.Errorf("aggregate facet values: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		ID interface{} `bson:"_id"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("decode facet values: %w", err)
	}

	values := make([]interface{}, 0, len(groups))
	for _, g := range groups {
		if g.ID == nil {
			continue
		}
		values = append(values, g.ID)
	}
	return values, nil
}

// BoolFacetDescriptor builds the facet for a boolean attribute. Boolean
// facets never consult the data: the values are always exactly
// [true, false] with the fixed presence labels.
func BoolFacetDescriptor(item models.FilterRequestItem) models.FilterDescriptor {
	return models.FilterDescriptor{
		FilterName:            item.FilterName,
		BeautifulFilterName:   item.BeautifulFilterName,
		FilterValues:          []interface{}{true, false},
		BeautifulFilterValues: []interface{}{"There are", "there aren't"},
		AppendixName:          item.AppendixName,
	}
}

// BuildFacetDescriptor turns the distinct values of one attribute into a
// facet with display labels. Values sort ascending when they are all
// numeric. Storage capacities above 1000 fine units collapse to the coarse
// unit; a single-space appendix means the value carries no suffix.
func BuildFacetDescriptor(item models.FilterRequestItem, values []interface{}) models.FilterDescriptor {
	sorted := sortFacetValues(values)

	beautiful := make([]interface{}, 0, len(sorted))
	for _, v := range sorted {
		beautiful = append(beautiful, beautifyFacetValue(item, v))
	}

	return models.FilterDescriptor{
		FilterName:            item.FilterName,
		BeautifulFilterName:   item.BeautifulFilterName,
		FilterValues:          sorted,
		BeautifulFilterValues: beautiful,
		AppendixName:          item.AppendixName,
	}
}

func beautifyFacetValue(item models.FilterRequestItem, v interface{}) interface{} {
	if item.FilterName == "internalStorage" {
		n, ok := asFloat(v)
		if ok && n > 1000 && len(item.AppendixName) > 1 {
			return fmt.Sprintf("%d %s", int(n)/1000, item.AppendixName[1])
		}
		if len(item.AppendixName) > 0 {
			return fmt.Sprintf("%v %s", v, item.AppendixName[0])
		}
		return v
	}
	if len(item.AppendixName) == 0 || item.AppendixName[0] == " " {
		return v
	}
	return fmt.Sprintf("%v %s", v, item.AppendixName[0])
}

func sortFacetValues(values []interface{}) []interface{} {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		n, ok := asFloat(v)
		if !ok {
			out := make([]interface{}, len(values))
			copy(out, values)
			return out
		}
		nums = append(nums, n)
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return nums[order[a]] < nums[order[b]] })

	out := make([]interface{}, len(values))
	for i, idx := range order {
		out[i] = values[idx]
	}
	return out
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

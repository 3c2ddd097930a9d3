package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// FormFieldsService stores the dynamic product form definition per category
// and serves it cache-first, the same shape as the filter facets.
type FormFieldsService struct {
	db    *mongo.Database
	store cache.Store
}

func NewFormFieldsService(db *mongo.Database, store cache.Store) *FormFieldsService {
	return &FormFieldsService{db: db, store: store}
}

// Save replaces the form definition for a category and refreshes the cache.
func (s *FormFieldsService) Save(ctx context.Context, req models.CreateFormFieldsRequest) (*models.FormFields, error) {
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

	doc := models.FormFields{
		CategoryID: category.ID,
		Category:   category.CategorySlug,
		Fields:     req.Fields,
	}

	_, err = s.db.Collection(models.FormFields{}.Collection()).ReplaceOne(
		ctx,
		bson.M{"categoryId": category.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("store form fields: %w", err)
	}

	if err := s.cacheFields(ctx, category.CategorySlug, req.Fields); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Get returns the form definition for a category slug, cache-first.
func (s *FormFieldsService) Get(ctx context.Context, categorySlug string) (*models.CachedFormFields, error) {
	raw, hit, err := s.store.Get(ctx, cache.FormFieldKey(categorySlug))
	if err != nil {
		return nil, fmt.Errorf("read form field cache: %w", err)
	}
	if hit {
		var cached models.CachedFormFields
		if err := json.Unmarshal([]byte(raw), &cached); err != nil {
			return nil, fmt.Errorf("decode cached form fields: %w", err)
		}
		return &cached, nil
	}

	var doc models.FormFields
	err = s.db.Collection(models.FormFields{}.Collection()).
		FindOne(ctx, bson.M{"category": categorySlug}).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find form fields: %w", err)
	}

	if err := s.cacheFields(ctx, categorySlug, doc.Fields); err != nil {
		return nil, err
	}
	return &models.CachedFormFields{Category: categorySlug, Fields: doc.Fields}, nil
}

func (s *FormFieldsService) cacheFields(ctx context.Context, categorySlug string, fields []models.FormField) error {
	payload, err := json.Marshal(models.CachedFormFields{Category: categorySlug, Fields: fields})
	if err != nil {
		return fmt.Errorf("encode form fields: %w", err)
	}
	if err := s.store.Set(ctx, cache.FormFieldKey(categorySlug), string(payload), 0); err != nil {
		return fmt.Errorf("cache form fields: %w", err)
	}
	return nil
}

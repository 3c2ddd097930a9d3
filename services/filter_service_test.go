package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

func TestBuildFacetDescriptorSortsNumericValues(t *testing.T) {
	item := models.FilterRequestItem{
		FilterName:          "ram",
		BeautifulFilterName: "RAM",
		AppendixName:        []string{"GB"},
	}

	desc := BuildFacetDescriptor(item, []interface{}{16, 4, 8})

	assert.Equal(t, []interface{}{4, 8, 16}, desc.FilterValues)
	assert.Equal(t, []interface{}{"4 GB", "8 GB", "16 GB"}, desc.BeautifulFilterValues)
}

func TestBuildFacetDescriptorStorageCollapsesToCoarseUnit(t *testing.T) {
	item := models.FilterRequestItem{
		FilterName:          "internalStorage",
		BeautifulFilterName: "Internal storage",
		AppendixName:        []string{"GB", "TB"},
	}

	desc := BuildFacetDescriptor(item, []interface{}{2000, 128, 1000})

	assert.Equal(t, []interface{}{128, 1000, 2000}, desc.FilterValues)
	assert.Equal(t, []interface{}{"128 GB", "1000 GB", "2 TB"}, desc.BeautifulFilterValues)
}

func TestBuildFacetDescriptorBlankAppendixKeepsRawValue(t *testing.T) {
	item := models.FilterRequestItem{
		FilterName:          "color",
		BeautifulFilterName: "Color",
		AppendixName:        []string{" "},
	}

	desc := BuildFacetDescriptor(item, []interface{}{"black", "space gray"})

	assert.Equal(t, []interface{}{"black", "space gray"}, desc.FilterValues)
	assert.Equal(t, []interface{}{"black", "space gray"}, desc.BeautifulFilterValues)
}

func TestBuildFacetDescriptorTextValuesKeepOrder(t *testing.T) {
	item := models.FilterRequestItem{
		FilterName:          "os",
		BeautifulFilterName: "Operating system",
	}

	desc := BuildFacetDescriptor(item, []interface{}{"ios", "android"})

	assert.Equal(t, []interface{}{"ios", "android"}, desc.FilterValues)
}

func TestBoolFacetDescriptorAlwaysTwoValues(t *testing.T) {
	for _, name := range []string{"quickCharge", "wirelessCharge", "fiveG", "nfc", "externalStorage", "freeCargo"} {
		desc := BoolFacetDescriptor(models.FilterRequestItem{
			FilterName:          name,
			BeautifulFilterName: "Label",
		})

		assert.Equal(t, name, desc.FilterName)
		assert.Equal(t, []interface{}{true, false}, desc.FilterValues, name)
		assert.Equal(t, []interface{}{"There are", "there aren't"}, desc.BeautifulFilterValues, name)
	}
}

func TestGetFiltersServesFromCache(t *testing.T) {
	store := cache.NewMemoryStore()
	svc := NewFilterService(nil, store)
	ctx := context.Background()

	filters := []models.FilterDescriptor{{
		FilterName:          "ram",
		BeautifulFilterName: "RAM",
		FilterValues:        []interface{}{float64(8), float64(16)},
	}}
	require.NoError(t, svc.cacheFilters(ctx, "smartphone", filters))

	got, err := svc.GetFilters(ctx, "smartphone")
	require.NoError(t, err)
	assert.Equal(t, "smartphone", got.Category)
	require.Len(t, got.Filters, 1)
	assert.Equal(t, "ram", got.Filters[0].FilterName)
	assert.Equal(t, []interface{}{float64(8), float64(16)}, got.Filters[0].FilterValues)
}

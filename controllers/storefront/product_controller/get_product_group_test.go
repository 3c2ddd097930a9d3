package product_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupVariantsByColorAndStorage(t *testing.T) {
	variants := []groupVariant{
		{ProductSlug: "a", Color: "space gray", Storage: int32(256)},
		{ProductSlug: "b", Color: "blue", Storage: int32(128)},
		{ProductSlug: "c", Color: "space gray", Storage: int32(128)},
	}

	colors, storages := groupVariants(variants)

	require.Len(t, colors, 2)
	assert.Equal(t, "blue", colors[0].Color)
	assert.Equal(t, "space gray", colors[1].Color)
	assert.Len(t, colors[1].Contents, 2)

	require.Len(t, storages, 2)
	assert.Equal(t, int32(128), storages[0].Storage)
	assert.Equal(t, int32(256), storages[1].Storage)
	assert.Len(t, storages[0].Contents, 2)
}

func TestGroupVariantsKeepsSortOrderInsideGroups(t *testing.T) {
	// rows arrive sorted by sales; encounter order must survive grouping
	variants := []groupVariant{
		{ProductSlug: "best", Color: "blue", Storage: int32(128)},
		{ProductSlug: "second", Color: "blue", Storage: int32(256)},
	}

	colors, _ := groupVariants(variants)

	require.Len(t, colors, 1)
	assert.Equal(t, "best", colors[0].Contents[0].ProductSlug)
	assert.Equal(t, "second", colors[0].Contents[1].ProductSlug)
}

func TestGroupVariantsNonNumericStorageSortsLast(t *testing.T) {
	variants := []groupVariant{
		{ProductSlug: "a", Color: "blue", Storage: nil},
		{ProductSlug: "b", Color: "red", Storage: int32(64)},
	}

	_, storages := groupVariants(variants)

	require.Len(t, storages, 2)
	assert.Equal(t, int32(64), storages[0].Storage)
	assert.Nil(t, storages[1].Storage)
}

func TestGroupVariantsEmpty(t *testing.T) {
	colors, storages := groupVariants(nil)
	assert.Empty(t, colors)
	assert.Empty(t, storages)
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKeyMapFeaturePaths(t *testing.T) {
	keyMap := BuildKeyMap()

	assert.Equal(t, "features.basicHardware.ram", keyMap["ram"])
	assert.Equal(t, "features.basicHardware.internalStorage", keyMap["internalStorage"])
	assert.Equal(t, "features.design.color", keyMap["color"])
	assert.Equal(t, "features.screen.screenSize", keyMap["screenSize"])
	assert.Equal(t, "features.battery.quickCharge", keyMap["quickCharge"])
	assert.Equal(t, "features.camera.mainCamera.mainCameraPixel", keyMap["mainCameraPixel"])
	assert.Equal(t, "features.design.dimensions.width", keyMap["width"])
}

func TestBuildKeyMapCategoryAndNamePaths(t *testing.T) {
	keyMap := BuildKeyMap()

	assert.Equal(t, "category.category", keyMap["category"])
	assert.Equal(t, "category.categorySlug", keyMap["categorySlug"])
	assert.Equal(t, "brand.brand", keyMap["brand"])
	assert.Equal(t, "model.model", keyMap["model"])
}

func TestBuildKeyMapPassThroughPaths(t *testing.T) {
	keyMap := BuildKeyMap()

	assert.Equal(t, "price.sellingPrice", keyMap["sellingPrice"])
	assert.Equal(t, "productSlug", keyMap["productSlug"])
	assert.Equal(t, "averageRating", keyMap["averageRating"])
	assert.Equal(t, "brandSlug", keyMap["brandSlug"])
}

func TestBuildKeyMapExcludesInternalIDs(t *testing.T) {
	keyMap := BuildKeyMap()

	_, hasID := keyMap["_id"]
	_, hasVersion := keyMap["__v"]
	assert.False(t, hasID)
	assert.False(t, hasVersion)
}

func TestBuildKeyMapDeterministic(t *testing.T) {
	first := BuildKeyMap()
	second := BuildKeyMap()
	assert.Equal(t, first, second)
}

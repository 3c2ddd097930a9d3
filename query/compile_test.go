package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func compileRaw(t *testing.T, raw map[string]string) Compiled {
	t.Helper()
	return Compile(Normalize(raw), BuildKeyMap())
}

func TestCompilePriceRange(t *testing.T) {
	out := compileRaw(t, map[string]string{"price": "100-200"})

	assert.Equal(t, bson.M{
		"price.sellingPrice": bson.M{"$gte": float64(100), "$lte": float64(200)},
	}, out.Match)
}

func TestCompileRangeOrderIndependent(t *testing.T) {
	ascending := compileRaw(t, map[string]string{"price": "100-200"})
	descending := compileRaw(t, map[string]string{"price": "200-100"})

	assert.Equal(t, ascending.Match, descending.Match)
}

func TestCompileSingleNumberPinsBothBounds(t *testing.T) {
	out := compileRaw(t, map[string]string{"price": "150"})

	assert.Equal(t, bson.M{
		"price.sellingPrice": bson.M{"$gte": float64(150), "$lte": float64(150)},
	}, out.Match)
}

func TestCompileScreenSizeRange(t *testing.T) {
	out := compileRaw(t, map[string]string{"screenSize": "5-7"})

	assert.Equal(t, bson.M{
		"features.screen.screenSize": bson.M{"$gte": float64(5), "$lte": float64(7)},
	}, out.Match)
}

func TestCompileListBecomesIn(t *testing.T) {
	out := compileRaw(t, map[string]string{"internalStorage": "128|256"})

	assert.Equal(t, bson.M{
		"features.basicHardware.internalStorage": bson.M{"$in": []interface{}{128, 256}},
	}, out.Match)
}

func TestCompileSingleInKeyIsEquality(t *testing.T) {
	out := compileRaw(t, map[string]string{"brand": "apple"})

	assert.Equal(t, bson.M{"brand.brand": "apple"}, out.Match)
}

func TestCompileBooleanEquality(t *testing.T) {
	out := compileRaw(t, map[string]string{"freeCargo": "true"})

	assert.Equal(t, bson.M{"freeCargo": true}, out.Match)
}

func TestCompileUnmappedKeyDropped(t *testing.T) {
	out := compileRaw(t, map[string]string{"nosuchfilter": "whatever", "brand": "apple"})

	assert.Equal(t, bson.M{"brand.brand": "apple"}, out.Match)
}

func TestCompilePaginationKeysNeverMatch(t *testing.T) {
	out := compileRaw(t, map[string]string{
		"limit": "10",
		"page":  "2",
		"skip":  "0",
		"sort":  "MOST_RECENT",
	})

	assert.Empty(t, out.Match)
}

func TestCompileSortSpecs(t *testing.T) {
	cases := map[string]bson.D{
		"PRICE_BY_ASC":   {{Key: "price", Value: 1}},
		"PRICE_BY_DESC":  {{Key: "price", Value: -1}},
		"MOST_RECENT":    {{Key: "createdAt", Value: -1}},
		"MOST_POPULAR":   {{Key: "numberOfRating", Value: -1}},
		"MOST_RATED":     {{Key: "averageRating", Value: -1}},
		"MOST_COMMENTED": {{Key: "numberOfComments", Value: -1}},
		"MOST_VIEWED":    {{Key: "viewCount", Value: -1}},
	}
	for name, want := range cases {
		out := compileRaw(t, map[string]string{"sort": name})
		assert.Equal(t, want, out.Sort, name)
	}
}

func TestCompileUnknownSortLeavesDefault(t *testing.T) {
	out := compileRaw(t, map[string]string{"sort": "CHEAPEST_FIRST"})
	assert.Nil(t, out.Sort)
}

func TestCompileCombinedQuery(t *testing.T) {
	out := compileRaw(t, map[string]string{
		"price":   "500-1000",
		"ram":     "8|16",
		"color":   "space-gray",
		"brand":   "samsung",
		"nfc":     "true",
		"sort":    "PRICE_BY_DESC",
		"limit":   "20",
		"page":    "1",
		"ignored": "x",
	})

	assert.Equal(t, bson.M{
		"price.sellingPrice":         bson.M{"$gte": float64(500), "$lte": float64(1000)},
		"features.basicHardware.ram": bson.M{"$in": []interface{}{8, 16}},
		"features.design.color":      "space gray",
		"brand.brand":                "samsung",
		"features.basicHardware.nfc": true,
	}, out.Match)
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, out.Sort)
}

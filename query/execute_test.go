package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/beratazgun/ecommerce-backend-api/models"
)

func summaries(n int) []models.ProductSummary {
	docs := make([]models.ProductSummary, n)
	for i := range docs {
		docs[i].Name = "product"
	}
	return docs
}

func TestPageSlice(t *testing.T) {
	docs := summaries(25)

	assert.Len(t, pageSlice(docs, 1, 10), 10)
	assert.Len(t, pageSlice(docs, 3, 10), 5)
	assert.Empty(t, pageSlice(docs, 4, 10))
	assert.Len(t, pageSlice(docs, 1, 100), 25)
}

func TestBuildPageInfoFirstPage(t *testing.T) {
	info := buildPageInfo(1, 10, 10, 87)

	assert.Equal(t, 10, info.Limit)
	assert.Equal(t, 0, info.Skip)
	assert.Equal(t, 1, info.Page)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 10, info.Length)
	assert.Equal(t, int64(87), info.TotalLength)
	assert.False(t, info.HasPrevPage)
	assert.Equal(t, 1, info.PrevPage)
}

func TestBuildPageInfoSecondPage(t *testing.T) {
	info := buildPageInfo(2, 10, 10, 87)

	assert.Equal(t, 10, info.Skip)
	assert.True(t, info.HasPrevPage)
	assert.Equal(t, 1, info.PrevPage)
}

func TestBuildPageInfoDeepPrevPage(t *testing.T) {
	info := buildPageInfo(5, 10, 7, 87)

	assert.Equal(t, 40, info.Skip)
	assert.Equal(t, 4, info.PrevPage)
	assert.Equal(t, 7, info.Length)
}

func TestBuildPageInfoTotalPagesFromSliceLength(t *testing.T) {
	// totalPages derives from the slice length, not the filtered total,
	// so a full page at page 1 yields exactly one page and no next page.
	info := buildPageInfo(1, 10, 10, 87)

	assert.Equal(t, 1, info.TotalPages)
	assert.False(t, info.HasNextPage)
	assert.Nil(t, info.NextPage)
}

func TestBuildListingPipelineStageOrder(t *testing.T) {
	pipeline := BuildListingPipeline(bson.M{"freeCargo": true}, nil)
	require.Len(t, pipeline, 11)

	names := make([]string, len(pipeline))
	for i, stage := range pipeline {
		names[i] = stage[0].Key
	}
	assert.Equal(t, []string{
		"$lookup", "$unwind",
		"$lookup", "$unwind",
		"$lookup", "$unwind",
		"$lookup", "$unwind",
		"$match", "$project", "$sort",
	}, names)
}

func TestBuildListingPipelineDefaultSort(t *testing.T) {
	pipeline := BuildListingPipeline(bson.M{}, nil)

	last := pipeline[len(pipeline)-1]
	require.Equal(t, "$sort", last[0].Key)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, last[0].Value)
}

func TestBuildListingPipelineCustomSort(t *testing.T) {
	pipeline := BuildListingPipeline(bson.M{}, bson.D{{Key: "price", Value: 1}})

	last := pipeline[len(pipeline)-1]
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, last[0].Value)
}

func TestBuildListingPipelineProjectsURL(t *testing.T) {
	pipeline := BuildListingPipeline(bson.M{}, nil)

	project := pipeline[9]
	require.Equal(t, "$project", project[0].Key)
	fields := project[0].Value.(bson.M)
	assert.Equal(t, bson.M{"$concat": bson.A{"/product/", "$brand.brand", "/", "$productSlug"}}, fields["url"])
	assert.Equal(t, "$features.basicHardware.internalStorage", fields["storage"])
}

func TestParamInt(t *testing.T) {
	params := map[string]Value{
		"limit": NumberValue(20),
		"sort":  TextValue("MOST_RECENT"),
	}

	assert.Equal(t, 20, paramInt(params, "limit", DefaultLimit))
	assert.Equal(t, DefaultPage, paramInt(params, "page", DefaultPage))
	assert.Equal(t, DefaultLimit, paramInt(params, "sort", DefaultLimit))
}

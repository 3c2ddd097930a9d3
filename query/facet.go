package query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BuildFacetPipeline collects the distinct values one filterable attribute
// takes across a category's products. It performs the same joins as the
// listing pipeline so the grouped path may point into any joined document,
// then groups on the attribute path.
func BuildFacetPipeline(categoryID primitive.ObjectID, path string) mongo.Pipeline {
	return mongo.Pipeline{
		lookupStage("features", "featuresId", "_id", "features"),
		unwindStage("$features"),
		lookupStage("productmodels", "modelId", "_id", "model"),
		unwindStage("$model"),
		lookupStage("brands", "brandId", "_id", "brand"),
		unwindStage("$brand"),
		lookupStage("categories", "categoryId", "_id", "category"),
		unwindStage("$category"),
		bson.D{{Key: "$match", Value: bson.M{"categoryId": categoryID}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$" + path}}},
	}
}

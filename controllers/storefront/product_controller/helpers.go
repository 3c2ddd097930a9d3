package product_controller

import "go.mongodb.org/mongo-driver/bson"

func lookup(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": foreignField,
		"as":           as,
	}}}
}

func unwind(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: path}}
}

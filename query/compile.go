package query

import (
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Keys interpreted as inclusive ranges rather than exact matches.
var rangeKeys = map[string]bool{
	"price":      true,
	"rating":     true,
	"screenSize": true,
}

// Keys that may carry multiple alternatives and compile to an $in clause.
var inOperatorKeys = map[string]bool{
	"color":                    true,
	"storage":                  true,
	"ram":                      true,
	"os":                       true,
	"screenResulation":         true,
	"screenRefreshRate":        true,
	"screenResolutionStandard": true,
	"mainCameraPixel":          true,
	"frontCameraPixel":         true,
	"screenTechnology":         true,
	"internalStorage":          true,
	"gpu":                      true,
	"cpu":                      true,
	"guarantyType":             true,
	"brand":                    true,
	"model":                    true,
}

// Keys consumed by pagination and ordering, never matched against documents.
var paginateKeys = map[string]bool{
	"limit": true,
	"page":  true,
	"skip":  true,
	"sort":  true,
}

var sortSpecs = map[string]bson.D{
	"PRICE_BY_ASC":   {{Key: "price", Value: 1}},
	"PRICE_BY_DESC":  {{Key: "price", Value: -1}},
	"MOST_RECENT":    {{Key: "createdAt", Value: -1}},
	"MOST_POPULAR":   {{Key: "numberOfRating", Value: -1}},
	"MOST_RATED":     {{Key: "averageRating", Value: -1}},
	"MOST_COMMENTED": {{Key: "numberOfComments", Value: -1}},
	"MOST_VIEWED":    {{Key: "viewCount", Value: -1}},
}

// Compiled is the database-ready form of a normalized query: the $match
// document and the $sort specification for the listing pipeline.
type Compiled struct {
	Match bson.M
	Sort  bson.D
}

// Compile turns normalized parameters into match conditions using the key
// map. Keys absent from the key map are dropped silently so unknown or
// misspelled filters degrade to a broader result instead of an error.
func Compile(params map[string]Value, keyMap map[string]string) Compiled {
	match := bson.M{}
	var sortSpec bson.D

	for key, value := range params {
		switch {
		case rangeKeys[key]:
			lookup := key
			if key == "price" {
				lookup = "sellingPrice"
			}
			path, ok := keyMap[lookup]
			if !ok {
				continue
			}
			bottom, top := bounds(value)
			match[path] = bson.M{"$gte": bottom, "$lte": top}
		case inOperatorKeys[key]:
			path, ok := keyMap[key]
			if !ok {
				continue
			}
			if value.Kind == List {
				match[path] = bson.M{"$in": value.Interface()}
			} else {
				match[path] = value.Interface()
			}
		case paginateKeys[key]:
			if key == "sort" && value.Kind == Text {
				sortSpec = sortSpecs[value.Text]
			}
		default:
			if path, ok := keyMap[key]; ok {
				match[path] = value.Interface()
			}
		}
	}

	return Compiled{Match: match, Sort: sortSpec}
}

// bounds extracts the inclusive floor and ceiling of a range value. A single
// number pins both ends to itself; a hyphenated pair is sorted numerically
// so "200-100" and "100-200" mean the same range.
func bounds(v Value) (float64, float64) {
	if v.Kind == Number {
		return float64(v.Num), float64(v.Num)
	}

	parts := strings.Split(v.Text, "-")
	if len(parts) == 1 || (len(parts) == 2 && parts[1] == "") {
		f, _ := parseLeadingFloat(parts[0])
		return f, f
	}

	nums := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, _ := parseLeadingFloat(p)
		nums = append(nums, f)
	}
	sort.Float64s(nums)
	return nums[0], nums[1]
}

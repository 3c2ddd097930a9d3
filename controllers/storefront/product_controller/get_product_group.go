package product_controller

import (
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

type groupVariant struct {
	Name             string      `json:"name" bson:"name"`
	Images           []string    `json:"images" bson:"images"`
	Model            string      `json:"model" bson:"model"`
	Brand            string      `json:"brand" bson:"brand"`
	Price            bson.M      `json:"price" bson:"price"`
	CargoPrice       float64     `json:"cargoPrice" bson:"cargoPrice"`
	ProductSlug      string      `json:"productSlug" bson:"productSlug"`
	Color            string      `json:"color" bson:"color"`
	Storage          interface{} `json:"storage" bson:"storage"`
	NumberOfRating   int         `json:"numberOfRating" bson:"numberOfRating"`
	FreeCargo        bool        `json:"freeCargo" bson:"freeCargo"`
	NumberOfComments int         `json:"numberOfComments" bson:"numberOfComments"`
	URL              string      `json:"url" bson:"url"`
}

type colorGroup struct {
	Color    string         `json:"color"`
	Contents []groupVariant `json:"contents"`
}

type storageGroup struct {
	Storage  interface{}    `json:"storage"`
	Contents []groupVariant `json:"contents"`
}

// GetProductGroup godoc
// @Summary Get product variant groups
// @Description Other colour and storage variants of the same model, grouped for the variant picker
// @Tags Products
// @Produce json
// @Param productSlug path string true "Product slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /products/:productSlug/group [get]
func GetProductGroup(c *gin.Context) {
	productSlug := c.Param("productSlug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	coll := config.DB.Collection(models.Product{}.Collection())

	var product models.Product
	err := coll.FindOne(ctx, bson.M{"productSlug": productSlug}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("[product.group] find failed for %s: %v", productSlug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	// one row per colour/storage combination of the same model, best
	// selling variant first
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"modelId": product.ModelID}}},
		lookup("features", "featuresId", "_id", "features"),
		unwind("$features"),
		lookup("productmodels", "modelId", "_id", "model"),
		unwind("$model"),
		lookup("brands", "brandId", "_id", "brand"),
		unwind("$brand"),
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"color":   "$features.design.color",
				"storage": "$features.basicHardware.internalStorage",
			},
			"maxNumberOfOrders": bson.M{"$max": "$numberOfOrders"},
			"name":              bson.M{"$first": "$name"},
			"images":            bson.M{"$first": "$images"},
			"model":             bson.M{"$first": "$model.model"},
			"brand":             bson.M{"$first": "$brand.brand"},
			"price":             bson.M{"$first": "$price"},
			"productSlug":       bson.M{"$first": "$productSlug"},
			"cargoPrice":        bson.M{"$first": "$cargoPrice"},
			"numberOfRating":    bson.M{"$first": "$numberOfRating"},
			"freeCargo":         bson.M{"$first": "$freeCargo"},
			"numberOfComments":  bson.M{"$first": "$numberOfComments"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "maxNumberOfOrders", Value: -1}}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":              0,
			"name":             1,
			"images":           1,
			"model":            1,
			"brand":            1,
			"price":            1,
			"cargoPrice":       1,
			"productSlug":      1,
			"numberOfRating":   1,
			"freeCargo":        1,
			"numberOfComments": 1,
			"color":            "$_id.color",
			"storage":          "$_id.storage",
			"url":              bson.M{"$concat": bson.A{"/product/", "$brand", "/", "$productSlug"}},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("[product.group] aggregation failed for %s: %v", productSlug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	defer cursor.Close(ctx)

	var variants []groupVariant
	if err := cursor.All(ctx, &variants); err != nil {
		log.Printf("[product.group] decode failed for %s: %v", productSlug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	colors, storages := groupVariants(variants)

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get product group successfully", gin.H{
		"color":   gin.H{"attributes": colors, "type": "color"},
		"storage": gin.H{"attributes": storages, "type": "storage"},
	}))
}

func groupVariants(variants []groupVariant) ([]colorGroup, []storageGroup) {
	colorIndex := make(map[string]int)
	storageIndex := make(map[interface{}]int)
	colors := make([]colorGroup, 0)
	storages := make([]storageGroup, 0)

	for _, v := range variants {
		if i, ok := colorIndex[v.Color]; ok {
			colors[i].Contents = append(colors[i].Contents, v)
		} else {
			colorIndex[v.Color] = len(colors)
			colors = append(colors, colorGroup{Color: v.Color, Contents: []groupVariant{v}})
		}

		if i, ok := storageIndex[v.Storage]; ok {
			storages[i].Contents = append(storages[i].Contents, v)
		} else {
			storageIndex[v.Storage] = len(storages)
			storages = append(storages, storageGroup{Storage: v.Storage, Contents: []groupVariant{v}})
		}
	}

	sort.Slice(colors, func(a, b int) bool { return colors[a].Color < colors[b].Color })
	sort.Slice(storages, func(a, b int) bool {
		return storageLess(storages[a].Storage, storages[b].Storage)
	})
	return colors, storages
}

func storageLess(a, b interface{}) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	return aok
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

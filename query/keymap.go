package query

// The key map resolves a short client-facing filter key ("ram") to the fully
// qualified path a match condition must target ("features.basicHardware.ram")
// once the listing pipeline has joined features, model, brand and category
// onto the product document.
//
// The original system derived these paths from live schema definitions; here
// they are an explicit table kept in sync with the structs in models. Order
// matters: a later attribute with the same short name overwrites an earlier
// mapping entry (last writer wins), so the entity order below is part of the
// contract.

var productPaths = []string{
	"productSlug",
	"noticeId",
	"name",
	"brandId",
	"modelId",
	"numberOfOrders",
	"price.discountedPrice",
	"price.originalPrice",
	"price.sellingPrice",
	"description",
	"quantityOfStock",
	"categoryId",
	"sellerId",
	"images",
	"guarantyTime",
	"guarantyType",
	"numberOfComments",
	"numberOfRating",
	"ratingsCount",
	"averageRating",
	"cargoPrice",
	"freeCargo",
	"deliveryTime",
	"viewCount",
	"saleCount",
	"createdAt",
	"updatedAt",
	"featuresId",
	"_id",
	"__v",
}

var categoryPaths = []string{
	"category",
	"categorySlug",
	"createdAt",
	"updatedAt",
	"_id",
	"__v",
}

var featuresPaths = []string{
	"noticeId",
	"productId",
	"modelId",
	"screen.screenSize",
	"screen.screenResulation",
	"screen.screenResulationStandard",
	"screen.screenTechnology",
	"screen.pixelDensity",
	"screen.screenRefreshRate",
	"screen.screenWeakness",
	"screen.screenBodyRatio",
	"battery.batteryCapacity",
	"battery.quickCharge",
	"battery.quickChargePower",
	"battery.wirelessCharge",
	"battery.chargeSocket",
	"battery.batteryTechnology",
	"camera.cameraCount",
	"camera.mainCamera.mainCameraPixel",
	"camera.mainCamera.mainCameraDiaphragm",
	"camera.frontCamera.frontCameraPixel",
	"camera.frontCamera.frontCameraDiaphragm",
	"basicHardware.chipset",
	"basicHardware.cpuFrequency",
	"basicHardware.cpuCores",
	"basicHardware.cpuArchitecture",
	"basicHardware.gpu",
	"basicHardware.ram",
	"basicHardware.internalStorage",
	"basicHardware.externalStorage",
	"basicHardware.fiveG",
	"basicHardware.nfc",
	"basicHardware.os",
	"design.color",
	"design.material",
	"design.dimensions.width",
	"design.dimensions.height",
	"design.dimensions.depth",
	"design.weight",
	"_id",
	"__v",
}

var brandPaths = []string{
	"brand",
	"brandSlug",
	"brandId",
	"logoImage",
	"createdAt",
	"updatedAt",
	"_id",
	"__v",
}

var productModelPaths = []string{
	"model",
	"modelSlug",
	"brandId",
	"categoryId",
	"_id",
	"__v",
}

var featureGroups = map[string]bool{
	"design":        true,
	"screen":        true,
	"basicHardware": true,
	"camera":        true,
	"battery":       true,
}

var categoryKeys = map[string]bool{
	"category":     true,
	"categorySlug": true,
}

// BuildKeyMap computes the short-name to path mapping. It is a pure function
// of the path tables above and can be rebuilt at any time.
func BuildKeyMap() map[string]string {
	// Deduplicate identical paths across entities, keeping the first
	// occurrence, before the classification pass.
	seen := make(map[string]bool)
	paths := make([]string, 0,
		len(productPaths)+len(categoryPaths)+len(featuresPaths)+len(brandPaths)+len(productModelPaths))
	for _, group := range [][]string{productPaths, categoryPaths, featuresPaths, brandPaths, productModelPaths} {
		for _, path := range group {
			if seen[path] {
				continue
			}
			seen[path] = true
			paths = append(paths, path)
		}
	}

	keyMap := make(map[string]string, len(paths))
	for _, path := range paths {
		first := firstSegment(path)
		short := lastSegment(path)

		switch {
		case featureGroups[first]:
			keyMap[short] = "features." + path
		case categoryKeys[first]:
			keyMap[short] = "category." + path
		case path == "model" || path == "brand":
			keyMap[short] = path + "." + path
		case path == "_id" || path == "__v":
			// internal identifiers never become filterable
			delete(keyMap, short)
		default:
			keyMap[short] = path
		}
	}

	return keyMap
}

func firstSegment(path string) string {
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}

func lastSegment(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return path
}

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo catalog: one category, two brands with a model each,
// a demo seller and a product per model.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ECOMMERCE BACKEND - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	category := seedCategory(ctx, "Smart Phone")
	seller := seedSeller(ctx)

	samsung := seedBrand(ctx, "Samsung")
	apple := seedBrand(ctx, "Apple")

	galaxy := seedModel(ctx, "Galaxy S24", samsung, category)
	iphone := seedModel(ctx, "iPhone 15", apple, category)

	seedProduct(ctx, galaxy, samsung, category, seller, productSpec{
		name: "Galaxy S24 256 GB", color: "onyx black", storage: 256, ram: 8,
		os: "Android", screenSize: 6.2, price: 849.90, stock: 40,
	})
	seedProduct(ctx, galaxy, samsung, category, seller, productSpec{
		name: "Galaxy S24 512 GB", color: "marble gray", storage: 512, ram: 8,
		os: "Android", screenSize: 6.2, price: 949.90, stock: 25,
	})
	seedProduct(ctx, iphone, apple, category, seller, productSpec{
		name: "iPhone 15 128 GB", color: "blue", storage: 128, ram: 6,
		os: "iOS", screenSize: 6.1, price: 899.00, stock: 30,
	})

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login/seller (seller@example.com / seedseed)")
	fmt.Println("3. Precompute filters with POST /api/v1/seller/filters")
	fmt.Println("4. Browse products at GET /api/v1/products")
	fmt.Println()
}

type productSpec struct {
	name       string
	color      string
	storage    int
	ram        int
	os         string
	screenSize float64
	price      float64
	stock      int
}

func seedCategory(ctx context.Context, name string) models.Category {
	coll := config.DB.Collection(models.Category{}.Collection())
	slug := utils.GenerateSlug(name)

	var existing models.Category
	if err := coll.FindOne(ctx, bson.M{"categorySlug": slug}).Decode(&existing); err == nil {
		log.Printf("✓ Category '%s' already present", name)
		return existing
	}

	now := time.Now()
	category := models.Category{Category: name, CategorySlug: slug, CreatedAt: now, UpdatedAt: now}
	res, err := coll.InsertOne(ctx, category)
	if err != nil {
		log.Fatalf("Failed to seed category: %v", err)
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	log.Printf("✓ Category '%s' created", name)
	return category
}

func seedBrand(ctx context.Context, name string) models.Brand {
	coll := config.DB.Collection(models.Brand{}.Collection())
	slug := utils.GenerateSlug(name)

	var existing models.Brand
	if err := coll.FindOne(ctx, bson.M{"brandSlug": slug}).Decode(&existing); err == nil {
		return existing
	}

	now := time.Now()
	brand := models.Brand{
		Brand:     name,
		BrandSlug: slug,
		BrandID:   utils.DigitID(10),
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := coll.InsertOne(ctx, brand)
	if err != nil {
		log.Fatalf("Failed to seed brand: %v", err)
	}
	brand.ID = res.InsertedID.(primitive.ObjectID)
	log.Printf("✓ Brand '%s' created", name)
	return brand
}

func seedModel(ctx context.Context, name string, brand models.Brand, category models.Category) models.ProductModel {
	coll := config.DB.Collection(models.ProductModel{}.Collection())

	var existing models.ProductModel
	if err := coll.FindOne(ctx, bson.M{"model": name, "brandId": brand.ID}).Decode(&existing); err == nil {
		return existing
	}

	now := time.Now()
	model := models.ProductModel{
		Model:      name,
		ModelSlug:  utils.GenerateSlug(name),
		BrandID:    brand.ID,
		CategoryID: category.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	res, err := coll.InsertOne(ctx, model)
	if err != nil {
		log.Fatalf("Failed to seed model: %v", err)
	}
	model.ID = res.InsertedID.(primitive.ObjectID)
	log.Printf("✓ Model '%s' created", name)
	return model
}

func seedSeller(ctx context.Context) models.Seller {
	coll := config.DB.Collection(models.Seller{}.Collection())

	var existing models.Seller
	if err := coll.FindOne(ctx, bson.M{"email": "seller@example.com"}).Decode(&existing); err == nil {
		log.Println("✓ Demo seller already present")
		return existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("seedseed"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seller password: %v", err)
	}

	now := time.Now()
	seller := models.Seller{
		FirstName: "Demo",
		LastName:  "Seller",
		Email:     "seller@example.com",
		Password:  string(hash),
		Role:      models.RoleSeller,
		Address:   []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := coll.InsertOne(ctx, seller)
	if err != nil {
		log.Fatalf("Failed to seed seller: %v", err)
	}
	seller.ID = res.InsertedID.(primitive.ObjectID)

	store := models.Store{StoreName: "Demo Store", SellerID: seller.ID}
	storeRes, err := config.DB.Collection(models.Store{}.Collection()).InsertOne(ctx, store)
	if err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}
	seller.StoreID = storeRes.InsertedID.(primitive.ObjectID)
	if _, err := coll.UpdateOne(ctx, bson.M{"_id": seller.ID}, bson.M{"$set": bson.M{"storeId": seller.StoreID}}); err != nil {
		log.Fatalf("Failed to link seller store: %v", err)
	}

	log.Println("✓ Demo seller created (seller@example.com / seedseed)")
	return seller
}

func seedProduct(ctx context.Context, model models.ProductModel, brand models.Brand, category models.Category, seller models.Seller, spec productSpec) {
	products := config.DB.Collection(models.Product{}.Collection())

	count, err := products.CountDocuments(ctx, bson.M{"name": spec.name, "sellerId": seller.ID})
	if err != nil {
		log.Fatalf("Failed to check product: %v", err)
	}
	if count > 0 {
		log.Printf("✓ Product '%s' already present", spec.name)
		return
	}

	noticeID := utils.DigitID(10)
	now := time.Now()
	product := models.Product{
		ProductSlug:     utils.GenerateSlug(fmt.Sprintf("%s %s-ni-%s", brand.Brand, spec.name, noticeID)),
		NoticeID:        noticeID,
		Name:            spec.name,
		BrandID:         brand.ID,
		ModelID:         model.ID,
		CategoryID:      category.ID,
		SellerID:        seller.ID,
		Price:           models.ProductPrice{DiscountedPrice: spec.price, OriginalPrice: spec.price * 1.1, SellingPrice: spec.price},
		Description:     fmt.Sprintf("%s demo listing", spec.name),
		QuantityOfStock: spec.stock,
		Images:          []string{},
		GuarantyTime:    24,
		GuarantyType:    "importer",
		RatingsCount:    models.NewRatingsCount(),
		CargoPrice:      9.90,
		DeliveryTime:    3,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res, err := products.InsertOne(ctx, product)
	if err != nil {
		log.Fatalf("Failed to seed product: %v", err)
	}
	productID := res.InsertedID.(primitive.ObjectID)

	features := models.Features{
		NoticeID:  noticeID,
		ProductID: productID,
		ModelID:   model.ID,
		Screen: models.ScreenFeatures{
			ScreenSize:               spec.screenSize,
			ScreenResulation:         "2340x1080",
			ScreenResulationStandard: "FHD+",
			ScreenTechnology:         "OLED",
			PixelDensity:             420,
			ScreenRefreshRate:        120,
			ScreenBodyRatio:          89.5,
		},
		Battery: models.BatteryFeatures{
			BatteryCapacity:   4000,
			QuickCharge:       true,
			QuickChargePower:  25,
			ChargeSocket:      "USB Type-C",
			BatteryTechnology: "Li-Ion",
		},
		Camera: models.CameraFeatures{
			CameraCount: 3,
			MainCamera:  models.MainCamera{MainCameraPixel: 50, MainCameraDiaphragm: 1.8},
			FrontCamera: models.FrontCamera{FrontCameraPixel: 12, FrontCameraDiaphragm: 2.2},
		},
		BasicHardware: models.BasicHardware{
			Chipset:         "Octa-core",
			CPUFrequency:    3.2,
			CPUCores:        8,
			CPUArchitecture: "64 bit",
			GPU:             "Integrated",
			RAM:             spec.ram,
			InternalStorage: spec.storage,
			FiveG:           true,
			NFC:             true,
			OS:              spec.os,
		},
		Design: models.DesignFeatures{
			Color:    spec.color,
			Material: "aluminium",
			Weight:   170,
		},
	}

	featRes, err := config.DB.Collection(models.Features{}.Collection()).InsertOne(ctx, features)
	if err != nil {
		log.Fatalf("Failed to seed features: %v", err)
	}

	featuresID := featRes.InsertedID.(primitive.ObjectID)
	if _, err := products.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": bson.M{"featuresId": featuresID}}); err != nil {
		log.Fatalf("Failed to link product features: %v", err)
	}

	log.Printf("✓ Product '%s' created", spec.name)
}

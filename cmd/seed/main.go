package main

import (
	"encoding/json"
	"log"
	"os"

	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/model"
	"stock-visibility-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedAdminUser(db)
	categories := seedCategories(db)
	seedProducts(db, categories)
	seedDefaultSettings(db)

	log.Println("Seeding completed!")
}

func seedAdminUser(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	var existing model.AdminUser
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin user '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}

	admin := model.AdminUser{
		Email:        email,
		FullName:     "Store Admin",
		PasswordHash: string(hash),
		Role:         "admin",
		Status:       "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin user: %v", err)
	} else {
		log.Printf("Created admin user: %s", email)
	}
}

func seedCategories(db *gorm.DB) map[string]uuid.UUID {
	categories := []model.Category{
		{Name: "Apparel", Slug: "apparel"},
		{Name: "Accessories", Slug: "accessories"},
		{Name: "Clearance", Slug: "clearance"},
	}

	ids := make(map[string]uuid.UUID, len(categories))
	for _, c := range categories {
		var existing model.Category
		if err := db.Where("slug = ?", c.Slug).First(&existing).Error; err == nil {
			log.Printf("Category '%s' already exists, skipping...", c.Slug)
			ids[c.Slug] = existing.Id
			continue
		}

		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating category '%s': %v", c.Slug, err)
			continue
		}
		log.Printf("Created category: %s", c.Name)
		ids[c.Slug] = c.Id
	}
	return ids
}

func seedProducts(db *gorm.DB, categories map[string]uuid.UUID) {
	type seedProduct struct {
		product  model.Product
		category string
	}

	products := []seedProduct{
		{model.Product{Name: "Classic Tee", Slug: "classic-tee", Description: "Everyday cotton tee", Price: 19.90, StockStatus: "instock", StockQuantity: 120}, "apparel"},
		{model.Product{Name: "Winter Hoodie", Slug: "winter-hoodie", Description: "Fleece-lined hoodie", Price: 49.90, StockStatus: "outofstock", StockQuantity: 0}, "apparel"},
		{model.Product{Name: "Canvas Belt", Slug: "canvas-belt", Description: "Adjustable canvas belt", Price: 14.50, StockStatus: "onbackorder", StockQuantity: 0}, "accessories"},
		{model.Product{Name: "Last Season Cap", Slug: "last-season-cap", Description: "Discontinued colorway", Price: 9.90, StockStatus: "outofstock", StockQuantity: 0}, "clearance"},
	}

	for _, sp := range products {
		var existing model.Product
		if err := db.Where("slug = ?", sp.product.Slug).First(&existing).Error; err == nil {
			log.Printf("Product '%s' already exists, skipping...", sp.product.Slug)
			continue
		}

		sp.product.Status = "published"
		if err := db.Create(&sp.product).Error; err != nil {
			log.Printf("Error creating product '%s': %v", sp.product.Slug, err)
			continue
		}
		log.Printf("Created product: %s", sp.product.Name)

		if categoryId, ok := categories[sp.category]; ok {
			membership := model.ProductCategory{ProductId: sp.product.Id, CategoryId: categoryId}
			if err := db.Create(&membership).Error; err != nil {
				log.Printf("Error assigning '%s' to category '%s': %v", sp.product.Slug, sp.category, err)
			}
		}
	}
}

func seedDefaultSettings(db *gorm.DB) {
	var existing model.StoreOption
	if err := db.Where("key = ?", entity.OptionKeyStockVisibility).First(&existing).Error; err == nil {
		log.Println("Stock visibility settings already exist, skipping...")
		return
	}

	raw, err := json.Marshal(map[string]interface{}{
		"display_mode":         "hide",
		"out_of_stock_label":   "",
		"excluded_product_ids": "",
		"hidden_category_ids":  "",
		"page_flags":           map[string]bool{},
	})
	if err != nil {
		log.Fatalf("Error marshalling default settings: %v", err)
	}

	option := model.StoreOption{
		Key:   entity.OptionKeyStockVisibility,
		Value: raw,
	}
	if err := db.Create(&option).Error; err != nil {
		log.Printf("Error creating default settings option: %v", err)
	} else {
		log.Println("Created default stock visibility settings (hide everywhere)")
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/config"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

func ptr(v float64) *float64 { return &v }

// main seeds a demo jewellery catalog
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("AURELIA JEWELS - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	// Wipe previous demo rows via the pgx pool
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := config.StoreDB.Exec(ctx, "TRUNCATE TABLE catalog_items"); err != nil {
		log.Fatalf("Failed to truncate catalog: %v", err)
	}
	log.Println("✓ Catalog table truncated")

	now := time.Now().UTC()
	items := []models.CatalogItem{
		{Name: "Gold Bangle", Category: "Bangles", Price: 450, CompareAtPrice: ptr(1000), Rating: 4.6, Tags: models.TagsList{"gold", "22k", "bestseller"}, CreatedAt: now},
		{Name: "Silver Bangle", Category: "Bangles", Price: 120, Rating: 4.1, Tags: models.TagsList{"silver", "daily-wear"}, CreatedAt: now.Add(-24 * time.Hour)},
		{Name: "Kundan Bangle Set", Category: "Bangles", Price: 980, CompareAtPrice: ptr(1200), Rating: 4.8, Tags: models.TagsList{"kundan", "bridal"}, CreatedAt: now.Add(-36 * time.Hour)},
		{Name: "Ruby Pendant", Category: "Necklaces", Price: 900, CompareAtPrice: ptr(1000), Rating: 4.4, Tags: models.TagsList{"ruby", "gemstone"}, CreatedAt: now.Add(-48 * time.Hour)},
		{Name: "Pearl Necklace", Category: "Necklaces", Price: 1200, Rating: 4.7, Tags: models.TagsList{"pearl", "classic"}, CreatedAt: now.Add(-72 * time.Hour)},
		{Name: "Emerald Choker", Category: "Necklaces", Price: 3400, CompareAtPrice: ptr(4000), Rating: 4.9, Tags: models.TagsList{"emerald", "bridal"}, CreatedAt: now.Add(-96 * time.Hour)},
		{Name: "Diamond Ring", Category: "Rings", Price: 2500, Rating: 4.9, Tags: models.TagsList{"diamond", "solitaire"}, CreatedAt: now.Add(-120 * time.Hour)},
		{Name: "Plain Ring", Category: "Rings", Price: 120, Rating: 3.9, Tags: models.TagsList{"silver", "minimal"}, CreatedAt: now.Add(-144 * time.Hour)},
		{Name: "Rose Gold Band", Category: "Rings", Price: 640, CompareAtPrice: ptr(800), Rating: 4.3, Tags: models.TagsList{"rose-gold", "band"}, CreatedAt: now.Add(-168 * time.Hour)},
		{Name: "Jhumka Earrings", Category: "Earrings", Price: 380, CompareAtPrice: ptr(950), Rating: 4.5, Tags: models.TagsList{"jhumka", "traditional"}, CreatedAt: now.Add(-192 * time.Hour)},
		{Name: "Stud Earrings", Category: "Earrings", Price: 150, Rating: 4.0, Tags: models.TagsList{"stud", "daily-wear"}, CreatedAt: now.Add(-216 * time.Hour)},
		{Name: "Charm Bracelet", Category: "Bracelets", Price: 275, Rating: 4.2, Tags: models.TagsList{"charm", "gift"}, CreatedAt: now.Add(-240 * time.Hour)},
	}

	for i := range items {
		items[i].ID = uuid.Must(uuid.NewV7())
		items[i].Status = "Active"
		if err := config.StoreGorm.Create(&items[i]).Error; err != nil {
			log.Fatalf("Failed to seed %q: %v", items[i].Name, err)
		}
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("✅ Seeded %d catalog items\n", len(items))
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse the catalog: GET /api/v1/store/products?q=bangle&sortBy=price-low")
	fmt.Println("3. Filter rail data:   GET /api/v1/store/filters/metadata")
	fmt.Println()
}

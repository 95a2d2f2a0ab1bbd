package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/samadhii99/Shopping-Store/cart"
	"github.com/samadhii99/Shopping-Store/catalog"
	"github.com/samadhii99/Shopping-Store/chatbot"
	"github.com/samadhii99/Shopping-Store/checkout"
	"github.com/samadhii99/Shopping-Store/pricing"
	"github.com/samadhii99/Shopping-Store/routes"
)

func main() {
	log.Println("✅ Starting storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	// Product catalog (static data source)
	source := catalog.Default()

	// Cart store, with postgres persistence when DATABASE_URL is set
	store := cart.NewStore(initCartRepository())

	// Pricing and checkout
	pricingCfg := pricing.ConfigFromEnv()
	checkoutSvc := checkout.NewService(store, pricingCfg, processingDelay())

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve product images
	r.Static("/images", "./public/images")

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:  source,
		Cart:     store,
		Checkout: checkoutSvc,
		Chat:     chatbot.New(source),
		Pricing:  pricingCfg,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initCartRepository connects cart persistence when DATABASE_URL is set.
// Without it carts are purely in-memory and end with the process.
func initCartRepository() cart.Repository {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Println("ℹ️  DATABASE_URL not set, carts are in-memory only")
		return nil
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	repo, err := cart.NewGormRepository(db)
	if err != nil {
		log.Fatalf("❌ Cart table migration failed: %v", err)
	}
	log.Println("✅ Cart persistence enabled")
	return repo
}

// processingDelay is the simulated order-processing time, overridable via
// CHECKOUT_PROCESSING_DELAY (e.g. "500ms").
func processingDelay() time.Duration {
	raw := os.Getenv("CHECKOUT_PROCESSING_DELAY")
	if raw == "" {
		return 2 * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️  Invalid CHECKOUT_PROCESSING_DELAY=%q, using default", raw)
		return 2 * time.Second
	}
	return d
}

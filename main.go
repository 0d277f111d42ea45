package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"futurewear/internal/handlers"
	"futurewear/internal/middleware"
	"futurewear/internal/models"
	"futurewear/internal/repositories"
	"futurewear/internal/services"
	"futurewear/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	_ = godotenv.Load()
	loadDefaults()

	appPort := viper.GetString("APP_PORT")

	// --- Initialize the app ---
	app, mqClient, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	if mqClient != nil {
		defer mqClient.Close()

		// Drain our own catalog events so the queue has a consumer in
		// single-process deployments.
		go func() {
			log.Println("Starting catalog events consumer...")
			err := mqClient.ConsumeCatalogEvents(func(msg amqp.Delivery) error {
				log.Printf("Catalog event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			})
			if err != nil {
				log.Printf("Catalog events consumer stopped: %v", err)
			}
		}()
	}

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", appPort)
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// loadDefaults registers the configuration defaults and enables environment
// overrides.
func loadDefaults() {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.SetDefault("JWT_SECRET", "futurewear_dev_secret")
	viper.SetDefault("SESSION_DURATION", "24h")
	viper.SetDefault("CART_DB_DRIVER", "sqlite")
	viper.SetDefault("CART_DB_DSN", "futurewear_cart.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()
}

// NewApp wires repositories, services and handlers into a Fiber app. The
// returned RabbitMQ client is nil when no broker URL is configured.
func NewApp() (*fiber.App, *rabbitmq.Client, error) {
	loadDefaults()

	sessionDuration := viper.GetDuration("SESSION_DURATION")
	if sessionDuration <= 0 {
		sessionDuration = 24 * time.Hour
	}

	// --- Catalog events (optional) ---
	var mqClient *rabbitmq.Client
	var events services.EventPublisher
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			return nil, nil, err
		}
		mqClient = client
		events = client
	} else {
		log.Println("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Cart persistence ---
	cartRepo := newCartRepository()

	// --- Repositories ---
	productRepo := repositories.NewMemoryProductRepository()
	dropRepo := repositories.NewMemoryDropRepository()
	seedCatalog(productRepo, dropRepo)

	// --- Services ---
	productService := services.NewProductService(productRepo, events)
	dropService := services.NewDropService(dropRepo, events)
	cartService := services.NewCartService(cartRepo)
	adminService := services.NewAdminService(productRepo, dropRepo)
	authService := services.NewAuthService(
		viper.GetString("ADMIN_USERNAME"),
		viper.GetString("ADMIN_PASSWORD"),
		viper.GetString("JWT_SECRET"),
		sessionDuration,
	)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	dropHandler := handlers.NewDropHandler(dropService)
	cartHandler := handlers.NewCartHandler(cartService)
	authHandler := handlers.NewAuthHandler(authService)
	adminProductHandler := handlers.NewAdminProductHandler(productService)
	adminDropHandler := handlers.NewAdminDropHandler(dropService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	authRequired := middleware.AuthRequired(authService)

	productHandler.RegisterRoutes(apiV1)
	dropHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1)
	adminProductHandler.RegisterRoutes(apiV1, authRequired)
	adminDropHandler.RegisterRoutes(apiV1, authRequired)
	adminHandler.RegisterRoutes(apiV1, authRequired)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, mqClient, nil
}

// newCartRepository opens the configured cart database. Cart durability is
// best-effort: when the database cannot be opened the cart falls back to a
// memory-only repository and the current session keeps working.
func newCartRepository() repositories.CartRepository {
	driver := viper.GetString("CART_DB_DRIVER")
	dsn := viper.GetString("CART_DB_DSN")

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		log.Printf("Unknown CART_DB_DRIVER %q, cart persistence disabled", driver)
		return repositories.NewMemoryCartRepository()
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Printf("Failed to open cart database: %v, cart persistence disabled", err)
		return repositories.NewMemoryCartRepository()
	}
	repo, err := repositories.NewGORMCartRepository(db)
	if err != nil {
		log.Printf("Failed to prepare cart database: %v, cart persistence disabled", err)
		return repositories.NewMemoryCartRepository()
	}
	return repo
}

// seedCatalog populates the stores with the launch catalog.
func seedCatalog(productRepo repositories.ProductRepository, dropRepo repositories.DropRepository) {
	salePrice := func(v float64) *float64 { return &v }

	products := []models.Product{
		{
			Name:        "OVERSIZED COTTON SHIRT",
			Price:       89,
			Image:       "/top (1).png",
			Category:    models.CategoryTop,
			Description: "Premium oversized cotton shirt with relaxed fit. Perfect for layering or wearing solo.",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black", "White", "Beige", "Olive"},
			IsNew:       true,
		},
		{
			Name:         "FUTURE TECH JACKET",
			Price:        299,
			Image:        "/top (2).png",
			Category:     models.CategoryTop,
			Description:  "Waterproof tech jacket with modern design. Features multiple pockets and adjustable hood.",
			Sizes:        []string{"M", "L", "XL", "XXL"},
			Colors:       []string{"Black", "Navy", "Gray"},
			IsBestseller: true,
		},
		{
			Name:           "OVERSIZED DENIM JACKET",
			Price:          149,
			Image:          "/top (3).png",
			Category:       models.CategoryTop,
			Description:    "Vintage-inspired oversized denim jacket with distressed details.",
			Sizes:          []string{"S", "M", "L", "XL"},
			Colors:         []string{"Light Blue", "Dark Blue", "Black"},
			IsOnSale:       true,
			SalePrice:      salePrice(99),
			SalePercentage: salePrice(34),
		},
		{
			Name:         "CYBER HOODIE",
			Price:        129,
			Image:        "/top (4).png",
			Category:     models.CategoryTop,
			Description:  "Premium oversized hoodie with futuristic design elements and comfortable fit.",
			Sizes:        []string{"S", "M", "L", "XL", "XXL"},
			Colors:       []string{"Black", "Gray", "Green"},
			IsNew:        true,
			IsBestseller: true,
		},
		{
			Name:         "VINTAGE STRAIGHT DENIM",
			Price:        159,
			Image:        "/mid (4).png",
			Category:     models.CategoryMid,
			Description:  "Timeless straight-leg denim jeans with classic blue wash. Perfect everyday fit.",
			Sizes:        []string{"28", "30", "32", "34", "36", "38"},
			Colors:       []string{"Light Blue", "Medium Blue", "Dark Blue", "Black"},
			IsNew:        true,
		},
		{
			Name:           "DISTRESSED DENIM JEANS",
			Price:          179,
			Image:          "/mid (3).png",
			Category:       models.CategoryMid,
			Description:    "Vintage-inspired distressed denim with authentic wear patterns and fading.",
			Sizes:          []string{"28", "30", "32", "34", "36"},
			Colors:         []string{"Light Blue", "Medium Blue"},
			IsOnSale:       true,
			SalePrice:      salePrice(129),
			SalePercentage: salePrice(28),
		},
		{
			Name:         "CHUNKY SNEAKERS",
			Price:        219,
			Image:        "/bottom (1).png",
			Category:     models.CategoryBottom,
			Description:  "Retro-inspired chunky sneakers with layered sole and mixed materials.",
			Sizes:        []string{"40", "41", "42", "43", "44", "45"},
			Colors:       []string{"White", "Black"},
			IsBestseller: true,
		},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		}
	}

	drops := []models.Drop{
		{
			Name:         "DROP 01 - SHADOW PARKA",
			Price:        349,
			Image:        "/drop (1).png",
			Description:  "Limited-run technical parka. Never restocked.",
			Sizes:        []string{"M", "L", "XL"},
			Availability: models.AvailabilityAvailable,
		},
		{
			Name:         "DROP 01 - PHANTOM CARGO",
			Price:        189,
			Image:        "/drop (2).png",
			Description:  "Limited-run cargo pant with taped seams.",
			Sizes:        []string{"30", "32", "34"},
			Availability: models.AvailabilityAvailable,
		},
		{
			Name:         "DROP 02 - ECLIPSE CREWNECK",
			Price:        139,
			Image:        "/drop (3).png",
			Description:  "Heavyweight crewneck, single colourway.",
			Sizes:        []string{"S", "M", "L"},
			Availability: models.AvailabilityComingSoon,
		},
	}
	for i := range drops {
		if err := dropRepo.Create(&drops[i]); err != nil {
			log.Printf("Error seeding drop %s: %v", drops[i].Name, err)
		}
	}
}

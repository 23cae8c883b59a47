package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"mealdash/cache"
	"mealdash/config"
	"mealdash/controllers"
	"mealdash/models"
	"mealdash/repository"
	"mealdash/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := repository.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	logger.Info("running database migrations")
	err = db.AutoMigrate(
		&models.Category{},
		&models.Food{},
		&models.Addon{},
		&models.PaymentMethod{},
		&models.Order{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// Catalog management lives in the admin app; seed a usable menu for
	// development so the order endpoints can be exercised immediately.
	seedCatalog(db, logger)

	var cacheRepo cache.CacheRepository = cache.NewNoopCache()
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		cacheRepo = cache.NewRedisAdapter(rdb)
	} else {
		logger.Warn("redis not configured, idempotency checks disabled")
	}

	var events services.IEventPublisher = services.NewNoopEventPublisher(logger)
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := services.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Fatalf("Failed to initialize Kafka publisher: %v", err)
		}
		events = kafkaPublisher
		logger.Info("kafka producer connected", "topic", cfg.Kafka.Topic)
	} else {
		logger.Warn("kafka not configured, order events disabled")
	}

	smsService := services.NewSMSService(cfg.SMS.BaseURL, cfg.SMS.APIKey, cfg.SMS.SenderID, logger)
	gateway := services.NewPaystackGateway(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey)

	orderRepo := repository.NewOrderRepository(db)
	orderSvc := services.NewOrderService(orderRepo, smsService, events, cacheRepo, logger)
	paymentSvc := services.NewPaymentService(orderRepo, gateway, smsService, events, cacheRepo, logger)

	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)

	app := fiber.New()
	app.Use(fiberrecover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Post("/orders", orderCtrl.CreateOrder)
	api.Get("/orders", orderCtrl.ListOrders)
	api.Get("/orders/track/:orderId", orderCtrl.TrackOrder)
	api.Put("/orders/:id", orderCtrl.UpdateOrderStatus)
	api.Delete("/orders/:id", orderCtrl.DeleteOrder)
	api.Post("/payment/verify-payment", paymentCtrl.VerifyPayment)

	logger.Info("server starting", "port", cfg.Server.Port)
	log.Fatal(app.Listen(cfg.Server.Port))
}

// seedCatalog creates a starter menu and payment methods for testing
// purposes. Existing rows are left alone so restarts do not duplicate.
func seedCatalog(db *gorm.DB, logger *slog.Logger) {
	categories := []models.Category{
		{Name: "Local Dishes"},
		{Name: "Fast Food"},
	}
	for i := range categories {
		var existing models.Category
		if db.Where("name = ?", categories[i].Name).First(&existing).Error != nil {
			if err := db.Create(&categories[i]).Error; err != nil {
				logger.Error("failed to seed category", "name", categories[i].Name, "error", err)
			}
		} else {
			categories[i] = existing
		}
	}

	foods := []models.Food{
		{Name: "Jollof Rice with Chicken", Price: decimal.NewFromFloat(45.00), CategoryID: categories[0].ID, IsAvailable: true},
		{Name: "Banku with Tilapia", Price: decimal.NewFromFloat(60.00), CategoryID: categories[0].ID, IsAvailable: true},
		{Name: "Chicken Burger", Price: decimal.NewFromFloat(35.00), CategoryID: categories[1].ID, IsAvailable: true},
	}
	for _, food := range foods {
		var existing models.Food
		if db.Where("name = ?", food.Name).First(&existing).Error != nil {
			if err := db.Create(&food).Error; err != nil {
				logger.Error("failed to seed food", "name", food.Name, "error", err)
			}
		}
	}

	addons := []models.Addon{
		{Name: "Coke", Type: "drink", Price: decimal.NewFromFloat(8.00)},
		{Name: "Sobolo", Type: "drink", Price: decimal.NewFromFloat(10.00)},
		{Name: "Extra Chicken", Type: "extra", Price: decimal.NewFromFloat(15.00)},
	}
	for _, addon := range addons {
		var existing models.Addon
		if db.Where("name = ?", addon.Name).First(&existing).Error != nil {
			if err := db.Create(&addon).Error; err != nil {
				logger.Error("failed to seed addon", "name", addon.Name, "error", err)
			}
		}
	}

	methods := []models.PaymentMethod{
		{Name: "Cash", IsActive: true},
		{Name: "Mobile Money", IsActive: true},
	}
	for _, method := range methods {
		var existing models.PaymentMethod
		if db.Where("name = ?", method.Name).First(&existing).Error != nil {
			if err := db.Create(&method).Error; err != nil {
				logger.Error("failed to seed payment method", "name", method.Name, "error", err)
			}
		}
	}

	logger.Info("catalog seeding finished")
}

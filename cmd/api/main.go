package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"storefront_backend/internal/controller"
	"storefront_backend/internal/middleware"
	"storefront_backend/internal/model"
	"storefront_backend/pkg/cache"
	"storefront_backend/pkg/config"
	"storefront_backend/pkg/database"
	"storefront_backend/pkg/email"
	"storefront_backend/pkg/scheduler"
	"storefront_backend/pkg/seed"
	"storefront_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)
	auth.Get("/verify/:token", controller.VerifyEmail)

	// Public catalog routes
	api.Get("/products", controller.ListProducts)
	api.Get("/products/:id", controller.GetProduct)
	api.Get("/categories", controller.ListCategories)
	api.Get("/categories/:category_id/products", controller.ListCategoryProducts)

	// Public blog routes
	api.Get("/blog", controller.ListBlogPosts)
	api.Get("/blog/:slug", controller.GetBlogPost)

	// Public contact form
	api.Post("/contacts", controller.CreateContact)

	// Protected Routes
	protected := api.Group("/", middleware.AuthMiddleware())
	protected.Get("/me", controller.GetMe)

	// Product management
	products := protected.Group("/products")
	products.Post("/", controller.CreateProduct)
	products.Put("/:id", controller.UpdateProduct)
	products.Delete("/:id", controller.DeleteProduct)
	products.Post("/:id/preview", controller.UploadProductPreview)
	products.Post("/:product_id/versions", controller.CreateVersion)
	protected.Put("/versions/:id/promote", controller.PromoteVersion)

	// Category management
	categories := protected.Group("/categories")
	categories.Post("/", controller.CreateCategory)
	categories.Put("/:id", controller.UpdateCategory)
	categories.Delete("/:id", controller.DeleteCategory)

	// Blog management
	blog := protected.Group("/blog")
	blog.Post("/", controller.CreateBlogPost)
	blog.Put("/:id", controller.UpdateBlogPost)
	blog.Delete("/:id", controller.DeleteBlogPost)
	blog.Post("/:id/preview", controller.UploadBlogPreview)

	// Contact inbox
	protected.Get("/contacts", controller.ListContacts)

	// Mailing management
	mailing := protected.Group("/mailing")
	mailing.Get("/settings", controller.ListMailingSettings)
	mailing.Post("/settings", controller.CreateMailingSettings)
	mailing.Get("/settings/:id", controller.GetMailingSettings)
	mailing.Put("/settings/:id", controller.UpdateMailingSettings)
	mailing.Delete("/settings/:id", controller.DeleteMailingSettings)
	mailing.Post("/settings/:id/activate", controller.ActivateMailingSettings)
	mailing.Post("/settings/:id/enroll", controller.EnrollClient)
	mailing.Delete("/settings/:id/enroll/:client_id", controller.UnenrollClient)
	mailing.Get("/messages", controller.ListMailingMessages)
	mailing.Post("/messages", controller.CreateMailingMessage)
	mailing.Put("/messages/:id", controller.UpdateMailingMessage)
	mailing.Get("/clients", controller.ListClients)
	mailing.Post("/clients", controller.CreateClient)
	mailing.Put("/clients/:id", controller.UpdateClient)
	mailing.Delete("/clients/:id", controller.DeleteClient)
	mailing.Get("/logs", controller.ListEmailLogs)
}

func main() {
	cfg := config.Load()

	if err := email.InitEmailService(cfg.Mail.ResendAPIKey, cfg.Mail.From); err != nil {
		log.Fatal("Could not initialize email service:", err)
	}

	if err := storage.InitStorage(cfg.Storage.Region); err != nil {
		log.Fatal("Could not initialize storage:", err)
	}

	database.InitDB(cfg.Database.DSN())
	err := database.MigrateDatabase(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Version{},
		&model.BlogPost{},
		&model.Contact{},
		&model.MailingMessage{},
		&model.Client{},
		&model.MailingSettings{},
		&model.MailingClient{},
		&model.EmailLog{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	if os.Getenv("SEED_DEFAULT_DATA") == "true" {
		seed.SeedCategories(database.GetDB())
	}

	registry := scheduler.NewRegistry(database.GetDB(), email.GlobalEmailService)
	if err := registry.SeedFromDatabase(); err != nil {
		log.Printf("Could not seed scheduler: %v", err)
	}
	registry.Start()

	controller.InitMailingController(registry)
	controller.InitCategoryController(cache.NewCategoryCache(database.GetDB()))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}

package config

import (
	"Menu-Planner-Backend/internal/api/handlers"
	"Menu-Planner-Backend/internal/api/routes"
	"Menu-Planner-Backend/internal/middleware"
	"Menu-Planner-Backend/internal/utils"
	"Menu-Planner-Backend/pkg/catalog"
	"Menu-Planner-Backend/pkg/planner"
	"Menu-Planner-Backend/pkg/shopping"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	catalogRepository := catalog.NewCatalogRepository(db)
	usageCounter := catalog.NewUsageCounter(db)
	planRepository := planner.NewPlanRepository(db, usageCounter)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	catalogService := catalog.NewCatalogService(catalogRepository)
	plannerService := planner.NewPlannerService(planRepository, catalogRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository, planRepository)

	// Handler
	planHandler := handlers.NewPlanHandler(plannerService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	recipeHandler := handlers.NewRecipeHandler(catalogService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		PlanHandler:     planHandler,
		ShoppingHandler: shoppingHandler,
		RecipeHandler:   recipeHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

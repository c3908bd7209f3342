package routes

import (
	"Menu-Planner-Backend/internal/api/handlers"
	"Menu-Planner-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	PlanHandler     handlers.PlanHandler
	ShoppingHandler handlers.ShoppingHandler
	RecipeHandler   handlers.RecipeHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Weeks()
	c.ShoppingList()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Weeks() {
	weeks := c.App.Group("/api/v1/weeks")
	{
		weeks.Post("/generate", c.PlanHandler.GenerateWeek)
		weeks.Get("/:weekStart", c.PlanHandler.GetWeek)
		weeks.Put("/:weekStart", c.PlanHandler.SaveWeek)
		weeks.Get("/:weekStart/search", c.PlanHandler.SearchRecipes)
	}
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/v1/shopping-list")
	{
		shoppingList.Get("", c.ShoppingHandler.GetShoppingList)
		shoppingList.Post("/toggle", c.ShoppingHandler.ToggleItem)
		shoppingList.Get("/extras/suggestions", c.ShoppingHandler.SuggestExtras)
		shoppingList.Post("/extras", c.ShoppingHandler.AddExtra)
		shoppingList.Post("/extras/toggle", c.ShoppingHandler.ToggleExtra)
		shoppingList.Delete("/extras/:id", c.ShoppingHandler.RemoveExtra)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}

	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Get("", c.RecipeHandler.GetIngredients)
		ingredients.Post("", c.RecipeHandler.CreateIngredient)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}

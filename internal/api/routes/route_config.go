package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rackiel/Foodify-sub001/internal/api/handlers"
	"github.com/rackiel/Foodify-sub001/internal/middleware"
	"github.com/rackiel/Foodify-sub001/pkg/jwt"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	IngredientHandler  handlers.IngredientHandler
	DonationHandler    handlers.DonationHandler
	ReservationHandler handlers.ReservationHandler
	ChallengeHandler   handlers.ChallengeHandler
	PointsHandler      handlers.PointsHandler
	RecipeHandler      handlers.RecipeHandler
	PreferencesHandler handlers.PreferencesHandler
	FeedbackHandler    handlers.FeedbackHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Ingredients()
	c.Donations()
	c.Reservations()
	c.Challenges()
	c.Points()
	c.Recipes()
	c.Preferences()
	c.Feedback()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))
	ingredients.Get("/stats", c.IngredientHandler.GetKitchenStats)

	ingredients.Post("", c.IngredientHandler.AddIngredient)
	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetails)
	ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)

	ingredients.Post("/:id/use", c.IngredientHandler.MarkUsed)
	ingredients.Post("/:id/restore", c.IngredientHandler.RestoreIngredient)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	donations.Get("/mine", c.DonationHandler.GetMyDonations)

	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetDonations)
	donations.Get("/:id", c.DonationHandler.GetDonationDetails)
	donations.Put("/:id", c.DonationHandler.UpdateDonation)
	donations.Delete("/:id", c.DonationHandler.DeleteDonation)
}

func (c *Config) Reservations() {
	reservations := c.App.Group("/api/v1/reservations", c.Middleware.AuthMiddleware(c.JWTService))
	reservations.Get("/mine", c.ReservationHandler.GetMyReservations)
	reservations.Get("/incoming", c.ReservationHandler.GetIncomingReservations)

	reservations.Post("", c.ReservationHandler.CreateReservation)
	reservations.Post("/:id/decision", c.ReservationHandler.DecideReservation)
	reservations.Post("/:id/complete", c.ReservationHandler.CompleteReservation)
	reservations.Post("/:id/cancel", c.ReservationHandler.CancelReservation)
}

func (c *Config) Challenges() {
	challenges := c.App.Group("/api/v1/challenges", c.Middleware.AuthMiddleware(c.JWTService))
	challenges.Get("", c.ChallengeHandler.GetActiveChallenges)
	challenges.Post("", c.Middleware.AdminOnly(), c.ChallengeHandler.CreateChallenge)
	challenges.Post("/join", c.ChallengeHandler.JoinChallenge)
	challenges.Get("/mine", c.ChallengeHandler.GetMyParticipations)
	challenges.Post("/refresh", c.ChallengeHandler.RefreshProgress)
}

func (c *Config) Points() {
	points := c.App.Group("/api/v1/points", c.Middleware.AuthMiddleware(c.JWTService))
	points.Get("", c.PointsHandler.GetPoints)
	points.Get("/history", c.PointsHandler.GetPointsHistory)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("/suggestions", c.RecipeHandler.GetSuggestions)

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
	recipes.Post("/:id/comments", c.RecipeHandler.AddComment)
	recipes.Get("/:id/comments", c.RecipeHandler.GetComments)
}

func (c *Config) Preferences() {
	preferences := c.App.Group("/api/v1/preferences", c.Middleware.AuthMiddleware(c.JWTService))
	preferences.Get("", c.PreferencesHandler.GetPreferences)
	preferences.Put("", c.PreferencesHandler.UpdatePreferences)
}

func (c *Config) Feedback() {
	feedback := c.App.Group("/api/v1/feedback", c.Middleware.AuthMiddleware(c.JWTService))
	feedback.Post("", c.FeedbackHandler.CreateFeedback)
	feedback.Get("", c.FeedbackHandler.GetMyFeedback)
	feedback.Put("/:id", c.FeedbackHandler.UpdateFeedback)
	feedback.Delete("/:id", c.FeedbackHandler.DeleteFeedback)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

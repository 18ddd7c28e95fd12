package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rackiel/Foodify-sub001/internal/api/handlers"
	"github.com/rackiel/Foodify-sub001/internal/api/routes"
	"github.com/rackiel/Foodify-sub001/internal/middleware"
	"github.com/rackiel/Foodify-sub001/internal/utils"
	"github.com/rackiel/Foodify-sub001/internal/utils/mailing"
	"github.com/rackiel/Foodify-sub001/internal/utils/storage"
	"github.com/rackiel/Foodify-sub001/pkg/challenge"
	"github.com/rackiel/Foodify-sub001/pkg/donation"
	"github.com/rackiel/Foodify-sub001/pkg/feedback"
	"github.com/rackiel/Foodify-sub001/pkg/ingredient"
	"github.com/rackiel/Foodify-sub001/pkg/jwt"
	"github.com/rackiel/Foodify-sub001/pkg/points"
	"github.com/rackiel/Foodify-sub001/pkg/preferences"
	"github.com/rackiel/Foodify-sub001/pkg/recipe"
	"github.com/rackiel/Foodify-sub001/pkg/reservation"
	"github.com/rackiel/Foodify-sub001/pkg/user"
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
		TimeZone:   "Asia/Manila",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	reservationRepository := reservation.NewReservationRepository(db)
	challengeRepository := challenge.NewChallengeRepository(db)
	pointsRepository := points.NewPointsRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	preferencesRepository := preferences.NewPreferencesRepository(db)
	feedbackRepository := feedback.NewFeedbackRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	pointsService := points.NewPointsService(pointsRepository)
	challengeService := challenge.NewChallengeService(challengeRepository, pointsService)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, userRepository, mailer, challengeService)
	donationService := donation.NewDonationService(donationRepository, s3, challengeService)
	reservationService := reservation.NewReservationService(reservationRepository, donationRepository, mailer)
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository, preferencesRepository, challengeService)
	preferencesService := preferences.NewPreferencesService(preferencesRepository)
	feedbackService := feedback.NewFeedbackService(feedbackRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	reservationHandler := handlers.NewReservationHandler(reservationService, validator)
	challengeHandler := handlers.NewChallengeHandler(challengeService, validator)
	pointsHandler := handlers.NewPointsHandler(pointsService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService, validator)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		IngredientHandler:  ingredientHandler,
		DonationHandler:    donationHandler,
		ReservationHandler: reservationHandler,
		ChallengeHandler:   challengeHandler,
		PointsHandler:      pointsHandler,
		RecipeHandler:      recipeHandler,
		PreferencesHandler: preferencesHandler,
		FeedbackHandler:    feedbackHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

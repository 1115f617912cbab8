package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/matsci-ai/matsci/app/controllers"
	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/database"
	"github.com/matsci-ai/matsci/internal/pkg/env"
	"github.com/matsci-ai/matsci/internal/pkg/payment"
	"github.com/matsci-ai/matsci/internal/pkg/prediction"
	"github.com/matsci-ai/matsci/internal/pkg/router"
	"github.com/matsci-ai/matsci/pkg/logger"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "5000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	logger.Setup(env.IsDev())

	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatal(err)
	}

	repository.InitializeFactory(db)
	repos := repository.GetGlobalRepositories()
	if err := repository.Seed(repos); err != nil {
		log.Fatal(err)
	}

	controllers.SetPredictionService(prediction.NewFromEnv())
	controllers.SetPaymentProcessor(payment.NewProcessor(repos, payment.NewSimulatedVerifier()))

	app := fiber.New(fiber.Config{
		AppName: "Mat-Sci-AI",
	})

	// recovery and logging
	app.Use(recover.New(), fiberlogger.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"github.com/IceRabbit1999/watchingir/configuration"
	"github.com/IceRabbit1999/watchingir/internal/api/controllers"
	"github.com/IceRabbit1999/watchingir/internal/api/middleware"
	"github.com/IceRabbit1999/watchingir/internal/api/routers"
	"github.com/IceRabbit1999/watchingir/internal/core/services"
	"github.com/IceRabbit1999/watchingir/internal/data/repository"
)

func Run(c *configuration.EnvConfigModel) {
	constantRepository := repository.NewConstantRepository(c.ConfigDir)
	settingsRepository := repository.NewSettingsRepository(c.ConfigDir)

	settingsService, err := services.NewSettingsService(settingsRepository)
	if err != nil {
		logrus.Fatalln("Failed to load settings:", err)
	}
	courierService := services.NewCourierService()
	constantService := services.NewConstantService(constantRepository, courierService)
	watcherService := services.NewWatcherService(courierService, constantService, settingsService)

	watchController := controllers.NewWatchController(watcherService, settingsService)

	watchRouter := routers.NewWatchRouter(watchController)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	//	Logger middleware for logging HTTP request/response details
	app.Use(logger.New())

	//	CORS middleware
	allowedOrigins := "http://127.0.0.1:8000,http://localhost:5173,http://localhost:4173"
	if c.CorsAllowedOrigins != "" {
		allowedOrigins += "," + c.CorsAllowedOrigins
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowHeaders: "POST",
	}))

	routers.SetupRoutes(app, watchRouter)

	watchCtx, stopWatcher := context.WithCancel(context.Background())
	go watcherService.Run(watchCtx)

	port := c.Port
	if port == "" {
		port = "8000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			logrus.Fatalln("Server stopped:", err)
		}
	}()

	// Block until an interrupt, then run the two teardown obligations
	// exactly once: persist the constant cache and save the settings.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down")
	stopWatcher()
	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Error("Server shutdown error")
	}

	constantService.Persist()
	settingsService.Save()
}

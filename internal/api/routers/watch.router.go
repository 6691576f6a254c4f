package routers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IceRabbit1999/watchingir/internal/api/controllers"
)

type WatchRouter struct {
	controller *controllers.WatchController
}

func NewWatchRouter(controller *controllers.WatchController) *WatchRouter {
	return &WatchRouter{controller: controller}
}

func SetupRoutes(app *fiber.App, router *WatchRouter) {
	api := app.Group("/api")

	matches := api.Group("/matches")
	matches.Get("/", router.controller.GetMatches)
	matches.Post("/refresh", router.controller.RefreshMatches)

	friends := api.Group("/friends")
	friends.Get("/", router.controller.GetFriends)
	friends.Post("/", router.controller.AddFriend)
	friends.Delete("/:accountID", router.controller.RemoveFriend)

	settings := api.Group("/settings")
	settings.Get("/", router.controller.GetSettings)
	settings.Put("/", router.controller.UpdateSettings)
}

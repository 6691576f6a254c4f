package controllers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/IceRabbit1999/watchingir/internal/core/dtos"
	"github.com/IceRabbit1999/watchingir/internal/core/models"
)

type WatcherService interface {
	RequestRefresh() bool
	Rows() []dtos.MatchRow
}

type SettingsService interface {
	Snapshot() models.Settings
	SetKeys(steamAPIKey, stratzAPIKey string)
	AddFriend(accountID int64) bool
	RemoveFriend(accountID int64) bool
}

type WatchController struct {
	WatcherService  WatcherService
	SettingsService SettingsService

	validate *validator.Validate
}

func NewWatchController(watcherService WatcherService, settingsService SettingsService) *WatchController {
	return &WatchController{
		WatcherService:  watcherService,
		SettingsService: settingsService,
		validate:        validator.New(),
	}
}

// GetMatches
//
//	@Summary		Latest matches
//	@Description	Get the latest match row per tracked friend
//	@Tags			watch
//	@Produce		json
//	@Success		200	{object}	[]dtos.MatchRow	"Current match rows"
//	@Router			/api/matches	[get]
func (cr *WatchController) GetMatches(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(cr.WatcherService.Rows())
}

// RefreshMatches
//
//	@Summary		Refresh matches
//	@Description	Trigger a background refresh of the latest matches
//	@Tags			watch
//	@Produce		json
//	@Success		202	{object}	dtos.MessageResponseType	"Refresh accepted"
//	@Router			/api/matches/refresh	[post]
func (cr *WatchController) RefreshMatches(c *fiber.Ctx) error {
	if !cr.WatcherService.RequestRefresh() {
		return c.Status(fiber.StatusAccepted).JSON(
			dtos.MessageResponseType{Message: "Refresh is already pending"},
		)
	}
	return c.Status(fiber.StatusAccepted).JSON(
		dtos.MessageResponseType{Message: "Refresh accepted"},
	)
}

// GetFriends
//
//	@Summary		Tracked friends
//	@Tags			friends
//	@Produce		json
//	@Success		200	{object}	[]int64	"Tracked account ids"
//	@Router			/api/friends	[get]
func (cr *WatchController) GetFriends(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(cr.SettingsService.Snapshot().Friends)
}

// AddFriend
//
//	@Summary		Track a friend
//	@Tags			friends
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	dtos.MessageResponseType	"Friend added"
//	@Failure		400	{object}	dtos.MessageResponseType	"Invalid account id"
//	@Failure		409	{object}	dtos.MessageResponseType	"Already tracked"
//	@Router			/api/friends	[post]
func (cr *WatchController) AddFriend(c *fiber.Ctx) error {
	addFriend := new(dtos.AddFriend)
	if err := c.BodyParser(addFriend); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dtos.MessageResponseType{Message: "Invalid request body"},
		)
	}
	if err := cr.validate.Struct(addFriend); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dtos.MessageResponseType{Message: "Account ID must be a positive integer"},
		)
	}

	if !cr.SettingsService.AddFriend(addFriend.AccountID) {
		return c.Status(fiber.StatusConflict).JSON(
			dtos.MessageResponseType{Message: "Account is already tracked"},
		)
	}
	return c.Status(fiber.StatusCreated).JSON(
		dtos.MessageResponseType{Message: "Friend added"},
	)
}

// RemoveFriend
//
//	@Summary		Stop tracking a friend
//	@Tags			friends
//	@Produce		json
//	@Param			accountID	path	string	true	"Account ID"
//	@Success		200	{object}	dtos.MessageResponseType	"Friend removed"
//	@Failure		400	{object}	dtos.MessageResponseType	"Invalid account id"
//	@Failure		404	{object}	dtos.MessageResponseType	"Not tracked"
//	@Router			/api/friends/{accountID}	[delete]
func (cr *WatchController) RemoveFriend(c *fiber.Ctx) error {
	accountID, err := strconv.ParseInt(c.Params("accountID"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dtos.MessageResponseType{Message: "Account ID is not an integer"},
		)
	}

	if !cr.SettingsService.RemoveFriend(accountID) {
		return c.Status(fiber.StatusNotFound).JSON(
			dtos.MessageResponseType{Message: "Account is not tracked"},
		)
	}
	return c.Status(fiber.StatusOK).JSON(
		dtos.MessageResponseType{Message: "Friend removed"},
	)
}

// GetSettings
//
//	@Summary		Current settings
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	dtos.SettingsView	"Settings without key material"
//	@Router			/api/settings	[get]
func (cr *WatchController) GetSettings(c *fiber.Ctx) error {
	settings := cr.SettingsService.Snapshot()
	return c.Status(fiber.StatusOK).JSON(dtos.SettingsView{
		SteamAPIKeySet:  settings.SteamAPIKey != "",
		StratzAPIKeySet: settings.StratzAPIKey != "",
		Friends:         settings.Friends,
	})
}

// UpdateSettings
//
//	@Summary		Update API keys
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dtos.MessageResponseType	"Settings updated"
//	@Failure		400	{object}	dtos.MessageResponseType	"Missing key"
//	@Router			/api/settings	[put]
func (cr *WatchController) UpdateSettings(c *fiber.Ctx) error {
	update := new(dtos.UpdateSettings)
	if err := c.BodyParser(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dtos.MessageResponseType{Message: "Invalid request body"},
		)
	}
	if err := cr.validate.Struct(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dtos.MessageResponseType{Message: "Both API keys are required"},
		)
	}

	cr.SettingsService.SetKeys(update.SteamAPIKey, update.StratzAPIKey)
	return c.Status(fiber.StatusOK).JSON(
		dtos.MessageResponseType{Message: "Settings updated"},
	)
}

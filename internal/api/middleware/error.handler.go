package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/IceRabbit1999/watchingir/internal/core/dtos"
	"github.com/IceRabbit1999/watchingir/internal/core/models"
)

// ErrorHandler translates the typed service errors to HTTP statuses.
// NoData is an expected outcome and reads as "no data", not as a failure.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var noData models.NoDataError
	if errors.As(err, &noData) {
		return c.Status(fiber.StatusNotFound).JSON(dtos.MessageResponseType{Message: noData.Error()})
	}

	var remote models.RemoteCallError
	if errors.As(err, &remote) {
		logrus.WithError(err).Error("Remote call failed")
		return c.Status(fiber.StatusBadGateway).JSON(dtos.MessageResponseType{Message: remote.Error()})
	}

	var malformed models.MalformedResponseError
	if errors.As(err, &malformed) {
		logrus.WithError(err).Error("Malformed remote response")
		return c.Status(fiber.StatusBadGateway).JSON(dtos.MessageResponseType{Message: malformed.Error()})
	}

	var notFound models.PlayerNotFoundError
	if errors.As(err, &notFound) {
		logrus.WithError(err).Error("Player missing from fetched match")
		return c.Status(fiber.StatusInternalServerError).JSON(dtos.MessageResponseType{Message: notFound.Error()})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(dtos.MessageResponseType{Message: fiberErr.Message})
	}

	logrus.WithError(err).Error("Unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(dtos.MessageResponseType{Message: err.Error()})
}

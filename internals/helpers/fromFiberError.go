package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func NotFound(format string, args ...any) error {
	return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) error {
	return fiber.NewError(fiber.StatusConflict, fmt.Sprintf(format, args...))
}

func Validation(format string, args ...any) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(format, args...))
}

// StatusOf reports the HTTP status an error will be rendered with.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler renders every error as {"error": "..."}. Conflicts are routine
// business outcomes and are logged at info; anything unclassified is a 500
// and its message is not exposed.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			log.Error("unhandled error",
				zap.Error(err),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
			return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}

		fields := []zap.Field{
			zap.Int("status", fe.Code),
			zap.String("error", fe.Message),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		}
		switch {
		case fe.Code >= fiber.StatusInternalServerError:
			log.Error("request failed", fields...)
		case fe.Code == fiber.StatusConflict:
			log.Info("request conflict", fields...)
		default:
			log.Warn("request rejected", fields...)
		}
		return JsonError(c, fe.Code, fe.Message)
	}
}

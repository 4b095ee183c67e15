package controller

import (
	"time"

	"brandscope-be/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// snapshotPayload renders a store snapshot for the presentation layer:
// data and error stay mutually exclusive, loading and staleness ride
// along.
func snapshotPayload[T any](snap store.Snapshot[T]) fiber.Map {
	var fetchedAt interface{}
	if snap.LastFetchedAt != nil {
		fetchedAt = snap.LastFetchedAt.Format(time.RFC3339)
	}
	return fiber.Map{
		"data":            snap.Data,
		"error":           nullableString(snap.Err),
		"is_loading":      snap.IsLoading,
		"last_fetched_at": fetchedAt,
	}
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func okResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"code":    400,
		"message": message,
	})
}

package controller

import (
	"brandscope-be/internal/entity"
	"brandscope-be/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ISocialController interface {
	RegisterRoutes(r fiber.Router)
	All(ctx *fiber.Ctx) error
	Platform(ctx *fiber.Ctx) error
}

type socialController struct {
	social store.ISocialStore
}

func NewSocialController(social store.ISocialStore) ISocialController {
	return &socialController{social: social}
}

func (c *socialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/social")
	h.Get("/", c.All)
	h.Get("/:platform", c.Platform)
}

// All fans out the five platform fetches and responds once every one
// has settled; partial failures come back in the errors map alongside
// the platforms that succeeded.
func (c *socialController) All(ctx *fiber.Ctx) error {
	brand := ctx.Query("brand")
	if brand == "" {
		return badRequest(ctx, "brand query parameter is required")
	}

	snap := c.social.FetchAll(ctx.Context(), brand)
	return okResponse(ctx, "Social media data", fiber.Map{
		"data":       snap.Data,
		"errors":     snap.Errors,
		"is_loading": snap.IsLoading,
	})
}

func (c *socialController) Platform(ctx *fiber.Ctx) error {
	brand := ctx.Query("brand")
	if brand == "" {
		return badRequest(ctx, "brand query parameter is required")
	}

	platform := entity.Platform(ctx.Params("platform"))
	known := false
	for _, p := range entity.AllPlatforms {
		if p == platform {
			known = true
			break
		}
	}
	if !known {
		return badRequest(ctx, "unknown platform")
	}

	c.social.FetchPlatform(ctx.Context(), brand, platform)
	snap := c.social.Snapshot()
	return okResponse(ctx, "Platform data", fiber.Map{
		"data":       snap.Data[platform],
		"error":      nullableString(snap.Errors[platform]),
		"is_loading": snap.IsLoading,
	})
}

package controller

import (
	"brandscope-be/internal/store"

	"github.com/gofiber/fiber/v2"
)

// IIntelController serves the per-company overview and website/SEO
// slices of the dashboard.
type IIntelController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
	Website(ctx *fiber.Ctx) error
	Keywords(ctx *fiber.Ctx) error
}

type intelController struct {
	overview store.IOverviewStore
	website  store.IWebsiteStore
}

func NewIntelController(overview store.IOverviewStore, website store.IWebsiteStore) IIntelController {
	return &intelController{overview: overview, website: website}
}

func (c *intelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/intel")
	h.Get("/overview", c.Overview)
	h.Get("/website", c.Website)
	h.Get("/keywords", c.Keywords)
}

func (c *intelController) Overview(ctx *fiber.Ctx) error {
	domain := ctx.Query("domain")
	if domain == "" {
		return badRequest(ctx, "domain query parameter is required")
	}
	snap := c.overview.Fetch(ctx.Context(), domain)
	return okResponse(ctx, "Company overview", snapshotPayload(snap))
}

func (c *intelController) Website(ctx *fiber.Ctx) error {
	domain := ctx.Query("domain")
	if domain == "" {
		return badRequest(ctx, "domain query parameter is required")
	}
	snap := c.website.Fetch(ctx.Context(), domain)
	return okResponse(ctx, "Website data", snapshotPayload(snap))
}

func (c *intelController) Keywords(ctx *fiber.Ctx) error {
	domain := ctx.Query("domain")
	if domain == "" {
		return badRequest(ctx, "domain query parameter is required")
	}
	snap := c.website.FetchKeywords(ctx.Context(), domain)
	return okResponse(ctx, "Keyword suggestions", snapshotPayload(snap))
}

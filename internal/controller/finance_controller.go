package controller

import (
	"brandscope-be/internal/store"

	"github.com/gofiber/fiber/v2"
)

// IFinanceController serves the revenue and fundraising slices, both
// of which sit behind the freshness window.
type IFinanceController interface {
	RegisterRoutes(r fiber.Router)
	Revenue(ctx *fiber.Ctx) error
	Fundraising(ctx *fiber.Ctx) error
}

type financeController struct {
	revenue     store.IRevenueStore
	fundraising store.IFundraisingStore
}

func NewFinanceController(revenue store.IRevenueStore, fundraising store.IFundraisingStore) IFinanceController {
	return &financeController{revenue: revenue, fundraising: fundraising}
}

func (c *financeController) RegisterRoutes(r fiber.Router) {
	r.Get("/revenue", c.Revenue)
	r.Get("/fundraising", c.Fundraising)
}

func (c *financeController) Revenue(ctx *fiber.Ctx) error {
	domain := ctx.Query("domain")
	if domain == "" {
		return badRequest(ctx, "domain query parameter is required")
	}
	snap := c.revenue.Fetch(ctx.Context(), domain)
	return okResponse(ctx, "Revenue data", snapshotPayload(snap))
}

func (c *financeController) Fundraising(ctx *fiber.Ctx) error {
	brand := ctx.Query("brand")
	if brand == "" {
		return badRequest(ctx, "brand query parameter is required")
	}
	snap := c.fundraising.Fetch(ctx.Context(), brand)
	return okResponse(ctx, "Fundraising data", snapshotPayload(snap))
}

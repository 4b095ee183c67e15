package controller

import (
	"brandscope-be/internal/dto"
	"brandscope-be/internal/store"

	"github.com/gofiber/fiber/v2"
)

type IScrapeController interface {
	RegisterRoutes(r fiber.Router)
	Trigger(ctx *fiber.Ctx) error
	Job(ctx *fiber.Ctx) error
}

type scrapeController struct {
	scrapes store.IScrapeStore
}

func NewScrapeController(scrapes store.IScrapeStore) IScrapeController {
	return &scrapeController{scrapes: scrapes}
}

func (c *scrapeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scrape")
	h.Post("/", c.Trigger)
	h.Get("/:domain", c.Job)
}

func (c *scrapeController) Trigger(ctx *fiber.Ctx) error {
	var req dto.ScrapeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	snap := c.scrapes.Trigger(ctx.Context(), req.Brand, req.Domain)
	if snap.Err != "" {
		return badRequest(ctx, snap.Err)
	}
	return okResponse(ctx, "Scrape started", snap.Data)
}

func (c *scrapeController) Job(ctx *fiber.Ctx) error {
	domain := ctx.Params("domain")
	job, ok := c.scrapes.Job(domain)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": "No scrape job recorded for domain",
		})
	}
	return okResponse(ctx, "Scrape job", job)
}

package controller

import (
	"time"

	"brandscope-be/internal/dto"
	"brandscope-be/internal/entity"
	"brandscope-be/internal/pkg/format"
	"brandscope-be/internal/service"
	"brandscope-be/internal/store"
	"brandscope-be/pkg/events"

	"github.com/gofiber/fiber/v2"
)

type ICompanyController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	BySlug(ctx *fiber.Ctx) error
}

type companyController struct {
	companies store.ICompanyStore
	scrapes   store.IScrapeStore
	publisher service.IPublisherService
}

func NewCompanyController(companies store.ICompanyStore, scrapes store.IScrapeStore, publisher service.IPublisherService) ICompanyController {
	return &companyController{
		companies: companies,
		scrapes:   scrapes,
		publisher: publisher,
	}
}

func (c *companyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/companies")
	h.Get("/", c.List)
	h.Post("/", c.Add)
	h.Delete("/:id", c.Remove)
	h.Get("/slug/:slug", c.BySlug)
}

func (c *companyController) List(ctx *fiber.Ctx) error {
	snap := c.companies.Fetch(ctx.Context())
	return okResponse(ctx, "Company list", snapshotPayload(snap))
}

// Add registers a competitor: triggers the backend scrape fan-out and
// inserts the company locally so the list updates without a refetch.
func (c *companyController) Add(ctx *fiber.Ctx) error {
	var req dto.AddCompanyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	jobSnap := c.scrapes.Trigger(ctx.Context(), req.BrandName, req.Domain)
	if jobSnap.Err != "" {
		return badRequest(ctx, jobSnap.Err)
	}

	now := time.Now()
	c.companies.Add(entity.Company{
		Domain:    req.Domain,
		BrandName: req.BrandName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})

	_ = c.publisher.Publish(ctx.Context(), events.New(events.TypeCompanyAdded, map[string]interface{}{
		"brand":  req.BrandName,
		"domain": req.Domain,
	}))

	return okResponse(ctx, "Competitor added", fiber.Map{
		"slug": format.Slugify(req.BrandName),
		"job":  jobSnap.Data,
	})
}

func (c *companyController) Remove(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return badRequest(ctx, "invalid company id")
	}

	c.companies.Remove(int64(id))

	_ = c.publisher.Publish(ctx.Context(), events.New(events.TypeCompanyRemoved, map[string]interface{}{
		"id": id,
	}))

	return okResponse(ctx, "Competitor removed", nil)
}

func (c *companyController) BySlug(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")
	company, ok := c.companies.BySlug(slug)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": "Company not found for slug",
		})
	}
	return okResponse(ctx, "Company", company)
}

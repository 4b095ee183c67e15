package controller

import (
	"brandscope-be/internal/dto"
	"brandscope-be/internal/session"
	"brandscope-be/internal/store"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SignIn(ctx *fiber.Ctx) error
	SignUp(ctx *fiber.Ctx) error
	ExchangeSSO(ctx *fiber.Ctx) error
	SignOut(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
}

type authController struct {
	auth     store.IAuthStore
	sessions *session.Manager
}

func NewAuthController(auth store.IAuthStore, sessions *session.Manager) IAuthController {
	return &authController{auth: auth, sessions: sessions}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signin", c.SignIn)
	h.Post("/signup", c.SignUp)
	h.Post("/sso", c.ExchangeSSO)
	h.Post("/logout", c.SignOut)
	h.Get("/session", c.Session)
}

func (c *authController) SignIn(ctx *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.auth.SignIn(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": err.Error(),
		})
	}
	return okResponse(ctx, "Signed in", c.sessionResponse())
}

func (c *authController) SignUp(ctx *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.auth.SignUp(ctx.Context(), &req); err != nil {
		return badRequest(ctx, err.Error())
	}
	return okResponse(ctx, "Account created", c.sessionResponse())
}

// ExchangeSSO handles the external portal token. It is deliberately
// not guarded by an existing-session check: a new portal token always
// replaces the current credential.
func (c *authController) ExchangeSSO(ctx *fiber.Ctx) error {
	var req dto.SSOExchangeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.Token == "" {
		req.Token = ctx.Query("token")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.auth.ExchangeSSOToken(ctx.Context(), req.Token); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": err.Error(),
		})
	}
	return okResponse(ctx, "Session established", c.sessionResponse())
}

func (c *authController) SignOut(ctx *fiber.Ctx) error {
	if err := c.auth.SignOut(ctx.Context()); err != nil {
		return badRequest(ctx, err.Error())
	}
	return okResponse(ctx, "Signed out", c.sessionResponse())
}

func (c *authController) Session(ctx *fiber.Ctx) error {
	return okResponse(ctx, "Session state", c.sessionResponse())
}

func (c *authController) sessionResponse() dto.SessionResponse {
	state := c.sessions.State()
	return dto.SessionResponse{
		State:           state.String(),
		IsAuthenticated: state == session.StateAuthenticated,
	}
}

package controller

import (
	"college-compass-be/internal/dto"
	"college-compass-be/internal/pkg/serverutils"
	"college-compass-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRefinementController interface {
	RegisterRoutes(r fiber.Router)
	Refine(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	JobStatus(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type refinementController struct {
	refinementService service.IRefinementService
}

func NewRefinementController(refinementService service.IRefinementService) IRefinementController {
	return &refinementController{
		refinementService: refinementService,
	}
}

// Refinement routes are anonymous-friendly: a valid session enriches the
// request with stored preferences, a missing or bad one degrades to an
// anonymous search instead of failing.
func (c *refinementController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/refinement/v1")
	h.Post("refine", c.Refine)
	h.Post("chat", c.Chat)
	h.Get("jobs/:id", c.JobStatus)
	h.Get("health", c.Health)
}

func (c *refinementController) Refine(ctx *fiber.Ctx) error {
	userId := serverutils.OptionalUser(ctx)

	var req dto.RefinementRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	payload, err := c.refinementService.Refine(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(payload)
}

func (c *refinementController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	payload, err := c.refinementService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(payload)
}

func (c *refinementController) JobStatus(ctx *fiber.Ctx) error {
	payload, err := c.refinementService.JobStatus(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(payload)
}

func (c *refinementController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"status": "healthy"}))
}

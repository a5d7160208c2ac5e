package controller

import (
	"college-compass-be/internal/dto"
	"college-compass-be/internal/pkg/serverutils"
	"college-compass-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IComparisonController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type comparisonController struct {
	comparisonService service.IComparisonService
}

func NewComparisonController(comparisonService service.IComparisonService) IComparisonController {
	return &comparisonController{
		comparisonService: comparisonService,
	}
}

func (c *comparisonController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/comparison/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Rename)
	h.Delete(":id", c.Delete)
}

func (c *comparisonController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	var req dto.CreateComparisonRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.comparisonService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create comparison", res))
}

func (c *comparisonController) List(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	res, err := c.comparisonService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list comparisons", res))
}

func (c *comparisonController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.comparisonService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show comparison", res))
}

func (c *comparisonController) Rename(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.RenameComparisonRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.comparisonService.Rename(ctx.Context(), userId, id, req.Name); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success rename comparison", nil))
}

func (c *comparisonController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.comparisonService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete comparison", nil))
}

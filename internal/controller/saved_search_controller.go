package controller

import (
	"college-compass-be/internal/dto"
	"college-compass-be/internal/pkg/serverutils"
	"college-compass-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISavedSearchController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ToggleFavorite(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type savedSearchController struct {
	savedSearchService service.ISavedSearchService
}

func NewSavedSearchController(savedSearchService service.ISavedSearchService) ISavedSearchController {
	return &savedSearchController{
		savedSearchService: savedSearchService,
	}
}

func (c *savedSearchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/saved-search/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id/favorite", c.ToggleFavorite)
	h.Delete(":id", c.Delete)
}

func (c *savedSearchController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	var req dto.CreateSavedSearchRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.savedSearchService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success save search", res))
}

func (c *savedSearchController) List(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	res, err := c.savedSearchService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list saved searches", res))
}

func (c *savedSearchController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.savedSearchService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show saved search", res))
}

func (c *savedSearchController) ToggleFavorite(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.ToggleFavoriteSearchRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.savedSearchService.ToggleFavorite(ctx.Context(), userId, id, req.IsFavorite); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update saved search", nil))
}

func (c *savedSearchController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.savedSearchService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete saved search", nil))
}

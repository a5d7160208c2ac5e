package controller

import (
	"college-compass-be/internal/dto"
	"college-compass-be/internal/pkg/serverutils"
	"college-compass-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFavoriteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type favoriteController struct {
	favoriteService service.IFavoriteService
}

func NewFavoriteController(favoriteService service.IFavoriteService) IFavoriteController {
	return &favoriteController{
		favoriteService: favoriteService,
	}
}

func (c *favoriteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/favorite/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Delete(":id", c.Delete)
}

func (c *favoriteController) List(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	res, err := c.favoriteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list favorites", res))
}

func (c *favoriteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	var req dto.CreateFavoriteRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.favoriteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add favorite", res))
}

func (c *favoriteController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.favoriteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove favorite", nil))
}

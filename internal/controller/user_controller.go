package controller

import (
	"college-compass-be/internal/dto"
	"college-compass-be/internal/pkg/serverutils"
	"college-compass-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	Preferences(ctx *fiber.Ctx) error
	SavePreferences(ctx *fiber.Ctx) error
	PreferencesByEmail(ctx *fiber.Ctx) error
}

type userController struct {
	userService       service.IUserService
	preferenceService service.IPreferenceService
}

func NewUserController(
	userService service.IUserService,
	preferenceService service.IPreferenceService,
) IUserController {
	return &userController{
		userService:       userService,
		preferenceService: preferenceService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("profile", c.Profile)
	h.Put("profile", c.UpdateProfile)
	h.Get("preferences", c.Preferences)
	h.Put("preferences", c.SavePreferences)
	h.Get("preferences/by-email", c.PreferencesByEmail)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	res, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	var req dto.UpdateProfileRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.userService.UpdateProfile(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update profile", nil))
}

func (c *userController) Preferences(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	res, err := c.preferenceService.Get(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show preferences", res))
}

func (c *userController) SavePreferences(ctx *fiber.Ctx) error {
	userId := serverutils.SessionUser(ctx)

	var req dto.SavePreferencesRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.preferenceService.Save(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success save preferences", nil))
}

func (c *userController) PreferencesByEmail(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing email")
	}

	res, err := c.preferenceService.GetByEmail(ctx.Context(), email)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show preferences", res))
}

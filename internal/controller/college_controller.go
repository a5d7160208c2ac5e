package controller

import (
	"college-compass-be/internal/dto"
	"college-compass-be/internal/pkg/serverutils"
	"college-compass-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICollegeController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type collegeController struct {
	collegeService service.ICollegeService
}

func NewCollegeController(collegeService service.ICollegeService) ICollegeController {
	return &collegeController{
		collegeService: collegeService,
	}
}

// College browsing is public: no session required.
func (c *collegeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/college/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *collegeController) List(ctx *fiber.Ctx) error {
	var req dto.ListCollegesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.collegeService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list colleges", res))
}

func (c *collegeController) Show(ctx *fiber.Ctx) error {
	res, err := c.collegeService.Show(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show college", res))
}

package controller

import (
	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/features/events/categories/dto"
	"ewm_backend/internals/features/events/categories/service"
	helper "ewm_backend/internals/helpers"
)

type CategoryController struct {
	Service *service.CategoryService
}

func NewCategoryController(svc *service.CategoryService) *CategoryController {
	return &CategoryController{Service: svc}
}

// POST /admin/categories
func (cc *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := cc.Service.CreateCategory(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, out)
}

// PATCH /admin/categories/:catId
func (cc *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "catId")
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := cc.Service.UpdateCategory(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// DELETE /admin/categories/:catId
func (cc *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "catId")
	if err != nil {
		return err
	}
	if err := cc.Service.DeleteCategory(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonNoContent(c)
}

// GET /categories?from=&size=
func (cc *CategoryController) GetCategories(c *fiber.Ctx) error {
	page, err := helper.ParsePage(c)
	if err != nil {
		return err
	}
	out, err := cc.Service.GetCategories(c.UserContext(), page)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

// GET /categories/:catId
func (cc *CategoryController) GetCategory(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "catId")
	if err != nil {
		return err
	}
	out, err := cc.Service.GetCategory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

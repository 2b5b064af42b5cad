package controller

import (
	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/features/events/compilations/dto"
	"ewm_backend/internals/features/events/compilations/service"
	helper "ewm_backend/internals/helpers"
)

type CompilationController struct {
	Service *service.CompilationService
}

func NewCompilationController(svc *service.CompilationService) *CompilationController {
	return &CompilationController{Service: svc}
}

// POST /admin/compilations
func (cc *CompilationController) CreateCompilation(c *fiber.Ctx) error {
	var req dto.CompilationRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := cc.Service.CreateCompilation(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, out)
}

// PATCH /admin/compilations/:compId
func (cc *CompilationController) UpdateCompilation(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "compId")
	if err != nil {
		return err
	}
	var req dto.CompilationRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := cc.Service.UpdateCompilation(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// DELETE /admin/compilations/:compId
func (cc *CompilationController) DeleteCompilation(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "compId")
	if err != nil {
		return err
	}
	if err := cc.Service.DeleteCompilation(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonNoContent(c)
}

// GET /compilations?pinned=&from=&size=
func (cc *CompilationController) GetCompilations(c *fiber.Ctx) error {
	pinned, err := helper.QueryBool(c, "pinned")
	if err != nil {
		return err
	}
	page, err := helper.ParsePage(c)
	if err != nil {
		return err
	}
	out, err := cc.Service.GetCompilations(c.UserContext(), pinned, page)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

// GET /compilations/:compId
func (cc *CompilationController) GetCompilation(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "compId")
	if err != nil {
		return err
	}
	out, err := cc.Service.GetCompilation(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

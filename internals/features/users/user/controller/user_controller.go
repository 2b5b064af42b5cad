package controller

import (
	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/features/users/user/dto"
	"ewm_backend/internals/features/users/user/service"
	helper "ewm_backend/internals/helpers"
)

type AdminUserController struct {
	Service *service.UserService
}

func NewAdminUserController(svc *service.UserService) *AdminUserController {
	return &AdminUserController{Service: svc}
}

// POST /admin/users
func (uc *AdminUserController) CreateUser(c *fiber.Ctx) error {
	var req dto.NewUserRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := uc.Service.CreateUser(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, out)
}

// GET /admin/users?ids=&from=&size=
func (uc *AdminUserController) GetUsers(c *fiber.Ctx) error {
	ids, err := helper.QueryInt64s(c, "ids")
	if err != nil {
		return err
	}
	page, err := helper.ParsePage(c)
	if err != nil {
		return err
	}
	out, err := uc.Service.GetUsers(c.UserContext(), ids, page)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

// DELETE /admin/users/:userId
func (uc *AdminUserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "userId")
	if err != nil {
		return err
	}
	if err := uc.Service.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonNoContent(c)
}

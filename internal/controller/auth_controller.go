package controller

import (
	"errors"

	"campus-chat-be/internal/constant"
	"campus-chat-be/internal/dto"
	"campus-chat-be/internal/pkg/serverutils"
	"campus-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	AdminLogin(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/admin/login", c.AdminLogin)
}

func (c *authController) AdminLogin(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.service.AdminLogin(&req)
	if err != nil {
		if errors.Is(err, constant.ErrUnauthorized) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid password"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(res)
}

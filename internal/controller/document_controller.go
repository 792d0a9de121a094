package controller

import (
	"errors"
	"strings"

	"campus-chat-be/internal/constant"
	"campus-chat-be/internal/pkg/serverutils"
	"campus-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	service     service.IDocumentService
	adminSecret string
}

func NewDocumentController(service service.IDocumentService, adminSecret string) IDocumentController {
	return &documentController{service: service, adminSecret: adminSecret}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	admin := serverutils.AdminMiddleware(c.adminSecret)

	r.Post("/upload-document", admin, c.Upload)
	r.Get("/documents", c.List)
	r.Delete("/documents/:filename", admin, c.Delete)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No file uploaded"))
	}
	if file.Filename == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No file selected"))
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Only PDF files are supported"))
	}

	category := ctx.FormValue("category", constant.CategoryGeneral)

	res, err := c.service.Upload(ctx.Context(), file, category)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(res)
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(res)
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	filename := ctx.Params("filename")

	if err := c.service.Delete(ctx.Context(), filename); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Document not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(fiber.Map{
		"status":  "success",
		"message": "Document deleted",
	})
}

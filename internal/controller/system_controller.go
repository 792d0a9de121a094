package controller

import (
	"time"

	"campus-chat-be/internal/dto"
	"campus-chat-be/internal/pkg/serverutils"
	"campus-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const appVersion = "1.0.0"

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type systemController struct {
	stats       service.IStatsService
	llmProvider string
}

func NewSystemController(stats service.IStatsService, llmProvider string) ISystemController {
	return &systemController{
		stats:       stats,
		llmProvider: llmProvider,
	}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Get("/stats", c.Stats)
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:      "healthy",
		LLMProvider: c.llmProvider,
		Timestamp:   time.Now().Format(time.RFC3339),
		Version:     appVersion,
	})
}

func (c *systemController) Stats(ctx *fiber.Ctx) error {
	res, err := c.stats.Aggregate(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(res)
}

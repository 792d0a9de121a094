package controller

import (
	"os"
	"path/filepath"
	"strings"

	"campus-chat-be/internal/dto"
	"campus-chat-be/internal/pkg/serverutils"
	"campus-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConfigController interface {
	RegisterRoutes(r fiber.Router)
	GetConfig(ctx *fiber.Ctx) error
	UpdateConfig(ctx *fiber.Ctx) error
	UploadAsset(ctx *fiber.Ctx) error
	QuickActions(ctx *fiber.Ctx) error
}

type configController struct {
	service     service.ICampusConfigService
	adminSecret string
	assetsDir   string
}

func NewConfigController(service service.ICampusConfigService, adminSecret, assetsDir string) IConfigController {
	return &configController{
		service:     service,
		adminSecret: adminSecret,
		assetsDir:   assetsDir,
	}
}

func (c *configController) RegisterRoutes(r fiber.Router) {
	admin := serverutils.AdminMiddleware(c.adminSecret)

	r.Get("/config", c.GetConfig)
	r.Post("/config", admin, c.UpdateConfig)
	r.Post("/upload-asset", admin, c.UploadAsset)
	r.Get("/quick-actions", c.QuickActions)
}

func (c *configController) GetConfig(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.GetPublic())
}

func (c *configController) UpdateConfig(ctx *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := ctx.BodyParser(&updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	if err := c.service.Update(updates); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to update configuration"))
	}
	return ctx.JSON(fiber.Map{
		"status":  "success",
		"message": "Configuration updated successfully",
	})
}

var allowedAssetExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".ico":  true,
	".svg":  true,
	".gif":  true,
	".webp": true,
}

// UploadAsset stores a branding asset (logo, favicon, background, bot
// avatar) under the assets dir and points the config at it. The stored name
// is derived from the asset type, so re-uploading replaces the previous one.
func (c *configController) UploadAsset(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No file uploaded"))
	}
	if file.Filename == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No file selected"))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedAssetExts[ext] {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid file type. Allowed: .png, .jpg, .jpeg, .ico, .svg, .gif, .webp"))
	}

	assetType := ctx.FormValue("type", "logo")
	filename := assetType + ext

	if err := os.MkdirAll(c.assetsDir, 0o755); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to save asset"))
	}
	if err := ctx.SaveFile(file, filepath.Join(c.assetsDir, filename)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to save asset"))
	}

	assetPath := "assets/" + filename
	if err := c.service.UpdateAssetPath(assetType, assetPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Failed to update configuration"))
	}

	return ctx.JSON(fiber.Map{
		"status":  "success",
		"path":    assetPath,
		"message": assetType + " uploaded successfully",
	})
}

// QuickActions returns the static shortcut buttons for the chat frontend.
func (c *configController) QuickActions(ctx *fiber.Ctx) error {
	actions := []dto.QuickAction{
		{Id: "fees", Label: "💰 Fee Structure", Query: "What is the fee structure?", Icon: "💰"},
		{Id: "exams", Label: "📝 Exam Schedule", Query: "When are the exams?", Icon: "📝"},
		{Id: "hostel", Label: "🏠 Hostel Rules", Query: "What are the hostel rules?", Icon: "🏠"},
		{Id: "library", Label: "📚 Library Info", Query: "Tell me about library services", Icon: "📚"},
		{Id: "contact", Label: "📞 Contact", Query: "How to contact administration?", Icon: "📞"},
		{Id: "calendar", Label: "📅 Calendar", Query: "Show academic calendar", Icon: "📅"},
	}
	return ctx.JSON(fiber.Map{"actions": actions})
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"shikhi_backend/config"
	"shikhi_backend/utils"
)

type UploadsController struct {
	Cfg *config.Config
}

func NewUploadsController(cfg *config.Config) *UploadsController {
	return &UploadsController{Cfg: cfg}
}

const maxUploadSize = 25 << 20 // 25 MB

// Upload accepts one multipart file and returns its durable URL.
func (up *UploadsController) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "A file is required")
	}

	if file.Size > maxUploadSize {
		return utils.BadRequest(c, "File exceeds the 25 MB limit")
	}

	storedName, err := utils.SaveUploadedFile(file, up.Cfg.UploadDir)
	if err != nil {
		return utils.InternalServerError(c, "Could not store file")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"url":      utils.FileURL(up.Cfg.PublicBaseURL, storedName),
		"filename": file.Filename,
	})
}

package controllers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"studytracker/backend/config"
	"studytracker/backend/utils"
)

type DebugController struct {
	Cfg *config.Config
}

func NewDebugController(cfg *config.Config) *DebugController {
	return &DebugController{Cfg: cfg}
}

// Static reports whether the upload directory exists. Registered only when
// APP_DEBUG is set; the route leaks filesystem layout otherwise.
func (dc *DebugController) Static(c *fiber.Ctx) error {
	_, err := os.Stat(dc.Cfg.UploadDir)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"upload_dir":        dc.Cfg.UploadDir,
		"upload_dir_exists": err == nil,
	})
}

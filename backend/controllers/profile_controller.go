package controllers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studytracker/backend/analytics"
	"studytracker/backend/config"
	"studytracker/backend/middleware"
	"studytracker/backend/models"
	"studytracker/backend/utils"
)

type ProfileController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProfileController(db *gorm.DB, cfg *config.Config) *ProfileController {
	return &ProfileController{DB: db, Cfg: cfg}
}

// GetStats godoc
// @Summary Profile statistics view
// @Description Totals, streak, level and related figures over the user's log
// @Tags profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security SessionCookie
// @Router /profile [get]
func (pc *ProfileController) GetStats(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	var logs []models.StudyLog
	if err := pc.DB.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
		return utils.InternalServerError(c, "Could not load study log")
	}

	stats := analytics.ProfileStats(logs)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"username": middleware.SessionUsername(c),
		"stats":    stats,
	})
}

// EditProfileForm returns the current profile, or null when none exists yet.
func (pc *ProfileController) EditProfileForm(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	var profile models.UserProfile
	err := pc.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Success(c, fiber.StatusOK, nil)
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not load profile")
	}

	return utils.Success(c, fiber.StatusOK, profile)
}

// EditProfile godoc
// @Summary Create or replace the user's profile
// @Description Full-row upsert; omitted fields are overwritten. An optional
// @Description multipart image is saved as user_{id}.png before the row write.
// @Tags profile
// @Accept mpfd
// @Success 302
// @Failure 500 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /edit_profile [post]
func (pc *ProfileController) EditProfile(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	var filename string
	if file, err := c.FormFile("image"); err == nil && file != nil {
		filename = fmt.Sprintf("user_%d.png", userID)
		if err := os.MkdirAll(pc.Cfg.UploadDir, 0o755); err != nil {
			return utils.InternalServerError(c, "Could not prepare upload directory")
		}
		if err := c.SaveFile(file, filepath.Join(pc.Cfg.UploadDir, filename)); err != nil {
			return utils.InternalServerError(c, "Could not save image")
		}
	}

	profile := models.UserProfile{
		UserID:      userID,
		DisplayName: c.FormValue("display_name"),
		Bio:         c.FormValue("bio"),
		Skills:      c.FormValue("skills"),
		Interests:   c.FormValue("interests"),
		College:     c.FormValue("college"),
		Image:       filename,
	}

	err := pc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&profile).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not save profile")
	}

	return c.Redirect("/profile")
}

// ServeUpload serves a stored avatar. Only authenticated users can fetch
// uploads, and the filename is flattened to its base to keep requests inside
// the upload directory.
func (pc *ProfileController) ServeUpload(c *fiber.Ctx) error {
	filename := filepath.Base(c.Params("filename"))
	path := filepath.Join(pc.Cfg.UploadDir, filename)

	if _, err := os.Stat(path); err != nil {
		return utils.NotFound(c, "Image not found")
	}

	return c.SendFile(path)
}

package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/backend/analytics"
	"studytracker/backend/config"
	"studytracker/backend/middleware"
	"studytracker/backend/models"
	"studytracker/backend/utils"
)

type DashboardController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{DB: db, Cfg: cfg}
}

// Dashboard godoc
// @Summary Dashboard view model
// @Description Returns the user's log with all derived analytics. Figures
// @Description are recomputed from the full history on every call.
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security SessionCookie
// @Router / [get]
func (dc *DashboardController) Dashboard(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)
	username := middleware.SessionUsername(c)

	var logs []models.StudyLog
	if err := dc.DB.Where("user_id = ?", userID).Order("id").Find(&logs).Error; err != nil {
		return utils.InternalServerError(c, "Could not load study log")
	}

	var user models.User
	if err := dc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	displayName := username
	image := "default.png"
	var profile models.UserProfile
	err := dc.DB.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		if profile.DisplayName != "" {
			displayName = profile.DisplayName
		}
		if profile.Image != "" {
			image = profile.Image
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not load profile")
	}

	data := fiber.Map{
		"logs":         logs,
		"total_hours":  analytics.TotalHoursBySubject(logs),
		"display_name": displayName,
		"profile_img":  image,
		"weekly_goal":  user.WeeklyGoal,
		"readiness":    nil,
		"status":       nil,
	}

	if score, status, ok := analytics.Readiness(logs); ok {
		data["readiness"] = score
		data["status"] = status
	}

	return utils.Success(c, fiber.StatusOK, data)
}

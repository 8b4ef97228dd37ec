package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/backend/config"
	"studytracker/backend/middleware"
	"studytracker/backend/models"
	"studytracker/backend/utils"
)

type GoalController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewGoalController(db *gorm.DB, cfg *config.Config) *GoalController {
	return &GoalController{DB: db, Cfg: cfg}
}

// SetGoal updates the user's weekly hour goal from the form field "goal".
func (gc *GoalController) SetGoal(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	goal, err := strconv.Atoi(c.FormValue("goal", "0"))
	if err != nil {
		return utils.ValidationError(c, map[string]string{"goal": "goal must be an integer"})
	}
	if goal < 0 {
		return utils.ValidationError(c, map[string]string{"goal": "goal must not be negative"})
	}

	if err := gc.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("weekly_goal", goal).Error; err != nil {
		return utils.InternalServerError(c, "Could not update goal")
	}

	return c.Redirect("/")
}

// ResetGoal sets the weekly goal back to zero.
func (gc *GoalController) ResetGoal(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	if err := gc.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("weekly_goal", 0).Error; err != nil {
		return utils.InternalServerError(c, "Could not reset goal")
	}

	return c.Redirect("/")
}

package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/backend/config"
	"studytracker/backend/history"
	"studytracker/backend/middleware"
	"studytracker/backend/models"
	"studytracker/backend/utils"
)

const dateLayout = "2006-01-02"

type LogController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	History *history.Store
}

func NewLogController(db *gorm.DB, cfg *config.Config, hist *history.Store) *LogController {
	return &LogController{DB: db, Cfg: cfg, History: hist}
}

// Add godoc
// @Summary Add a study log entry
// @Tags log
// @Accept x-www-form-urlencoded
// @Param date formData string true "Date (2006-01-02)"
// @Param subject formData string true "Subject"
// @Param topic formData string false "Topic"
// @Param hours formData number true "Hours studied"
// @Param difficulty formData integer true "Difficulty rating"
// @Success 302
// @Failure 400 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /add [post]
func (lc *LogController) Add(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	date := c.FormValue("date")
	subject := c.FormValue("subject")
	topic := c.FormValue("topic")

	fieldErrors := make(map[string]string)

	if _, err := time.Parse(dateLayout, date); err != nil {
		fieldErrors["date"] = "date must be in YYYY-MM-DD format"
	}
	if subject == "" {
		fieldErrors["subject"] = "subject is required"
	}

	hours, err := strconv.ParseFloat(c.FormValue("hours"), 64)
	if err != nil {
		fieldErrors["hours"] = "hours must be a number"
	} else if hours < 0 {
		fieldErrors["hours"] = "hours must not be negative"
	}

	difficulty, err := strconv.Atoi(c.FormValue("difficulty"))
	if err != nil {
		fieldErrors["difficulty"] = "difficulty must be an integer"
	}

	if len(fieldErrors) > 0 {
		return utils.ValidationError(c, fieldErrors)
	}

	entry := models.StudyLog{
		UserID:     userID,
		Date:       date,
		Subject:    subject,
		Topic:      topic,
		Hours:      hours,
		Difficulty: difficulty,
	}
	if err := lc.DB.Create(&entry).Error; err != nil {
		return utils.InternalServerError(c, "Could not save entry")
	}

	return c.Redirect("/")
}

// Delete godoc
// @Summary Delete a study log entry
// @Description Snapshots the entry for undo, then removes it. Unknown ids
// @Description are a no-op.
// @Tags log
// @Param id path int true "Entry id"
// @Success 302
// @Security SessionCookie
// @Router /delete/{id} [get]
func (lc *LogController) Delete(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid entry id")
	}

	var entry models.StudyLog
	if err := lc.DB.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		// Missing (or someone else's) entry: idempotent no-op.
		return c.Redirect("/")
	}

	lc.History.RecordDelete(userID, entry)

	if err := lc.DB.Delete(&models.StudyLog{}, entry.ID).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete entry")
	}

	return c.Redirect("/")
}

// Undo re-inserts the caller's most recently deleted entry under its
// original id and moves it onto the redo stack.
func (lc *LogController) Undo(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	entry, ok := lc.History.Undo(userID)
	if !ok {
		return c.Redirect("/")
	}

	if err := lc.DB.Create(&entry).Error; err != nil {
		return utils.InternalServerError(c, "Could not restore entry")
	}

	return c.Redirect("/")
}

// Redo deletes the caller's most recently undone entry again and moves it
// back onto the undo stack.
func (lc *LogController) Redo(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	entry, ok := lc.History.Redo(userID)
	if !ok {
		return c.Redirect("/")
	}

	if err := lc.DB.Delete(&models.StudyLog{}, entry.ID).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete entry")
	}

	return c.Redirect("/")
}

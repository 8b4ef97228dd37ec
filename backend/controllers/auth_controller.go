package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studytracker/backend/config"
	"studytracker/backend/models"
	"studytracker/backend/utils"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// ShowRegister godoc
// @Summary Registration form hint
// @Tags auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /register [get]
func (ac *AuthController) ShowRegister(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"fields": []string{"username", "password"},
	})
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account from form credentials
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	fieldErrors := make(map[string]string)
	if username == "" {
		fieldErrors["username"] = "username is required"
	}
	if password == "" {
		fieldErrors["password"] = "password is required"
	}
	if len(fieldErrors) > 0 {
		return utils.ValidationError(c, fieldErrors)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "Username already taken")
		}
		return utils.InternalServerError(c, "Could not create user")
	}

	return c.Redirect("/login")
}

// ShowLogin godoc
// @Summary Login form hint
// @Tags auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /login [get]
func (ac *AuthController) ShowLogin(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"fields": []string{"username", "password"},
	})
}

// Login godoc
// @Summary User login
// @Description Verifies credentials and establishes a session cookie.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302
// @Failure 401 {object} utils.ErrorResponse
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	// One generic message for unknown user and wrong password, so login
	// failures cannot be used to enumerate usernames.
	var user models.User
	if err := ac.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate session")
	}
	utils.SetSessionCookie(c, token)

	return c.Redirect("/")
}

// Logout godoc
// @Summary Clear the session
// @Tags auth
// @Success 302
// @Router /logout [get]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	utils.ClearSessionCookie(c)
	return c.Redirect("/login")
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/backend/config"
	"studytracker/backend/controllers"
	"studytracker/backend/history"
	"studytracker/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, hist *history.Store) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Get("/register", authController.ShowRegister)
	app.Post("/register", authController.Register)
	app.Get("/login", authController.ShowLogin)
	app.Post("/login", authController.Login)
	app.Get("/logout", authController.Logout)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Dashboard
	dashboardController := controllers.NewDashboardController(db, cfg)
	app.Get("/", authMiddleware, dashboardController.Dashboard)

	// Study log
	logController := controllers.NewLogController(db, cfg, hist)
	app.Post("/add", authMiddleware, logController.Add)
	app.Get("/delete/:id", authMiddleware, logController.Delete)
	app.Get("/undo", authMiddleware, logController.Undo)
	app.Get("/redo", authMiddleware, logController.Redo)

	// Profile
	profileController := controllers.NewProfileController(db, cfg)
	app.Get("/profile", authMiddleware, profileController.GetStats)
	app.Get("/edit_profile", authMiddleware, profileController.EditProfileForm)
	app.Post("/edit_profile", authMiddleware, profileController.EditProfile)
	app.Get("/uploads/:filename", authMiddleware, profileController.ServeUpload)

	// Weekly goal
	goalController := controllers.NewGoalController(db, cfg)
	app.Post("/set_goal", authMiddleware, goalController.SetGoal)
	app.Get("/reset_goal", authMiddleware, goalController.ResetGoal)

	// Diagnostics, debug builds only
	if cfg.Debug {
		debugController := controllers.NewDebugController(cfg)
		app.Get("/debug-static", debugController.Static)
	}
}

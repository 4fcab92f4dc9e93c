package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ravenlog/ravenlog/internal/app/controllers"
	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	applicationController *controllers.ApplicationController,
	referenceController *controllers.ReferenceController,
	personnelController *controllers.PersonnelController,
	qualificationController *controllers.QualificationController,
	eventController *controllers.EventController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// Reference catalogs are readable without authentication so the
	// application form can be rendered before sign-up.
	v1.GET("/ranks", referenceController.ListRanks)
	v1.GET("/units", referenceController.ListUnits)
	v1.GET("/units/:id", referenceController.GetUnit)
	v1.GET("/units/:id/positions", referenceController.ListUnitPositions)
	v1.GET("/forms", referenceController.ListForms)
	v1.GET("/forms/:id", referenceController.GetForm)
	v1.GET("/awards", personnelController.ListAwards)
	v1.GET("/qualifications", qualificationController.ListQualifications)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/users/me", userController.GetProfile)

		// Candidates submit applications; admins review them
		authenticated.POST("/applications", applicationController.SubmitApplication)

		authenticated.GET("/personnel", personnelController.ListPersonnel)
		authenticated.GET("/personnel/me", personnelController.GetOwnRecord)
		authenticated.GET("/personnel/:id", personnelController.GetPersonnel)
		authenticated.GET("/personnel/:id/awards", personnelController.ListPersonnelAwards)
		authenticated.GET("/personnel/:id/qualifications", qualificationController.ListPersonnelQualifications)

		authenticated.GET("/events", eventController.ListEvents)
		authenticated.GET("/events/:id", eventController.GetEvent)

		// --- Admin routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			// Review and processing
			admin.GET("/applications", applicationController.ListApplications)
			admin.GET("/applications/:id", applicationController.GetApplication)
			admin.PATCH("/applications/:id/status", applicationController.UpdateStatus)
			admin.POST("/applications/:id/process", applicationController.ProcessCandidate)

			// Reference data management
			admin.POST("/ranks", referenceController.CreateRank)
			admin.PUT("/ranks/:id", referenceController.UpdateRank)
			admin.DELETE("/ranks/:id", referenceController.DeleteRank)
			admin.POST("/units", referenceController.CreateUnit)
			admin.PUT("/units/:id", referenceController.UpdateUnit)
			admin.DELETE("/units/:id", referenceController.DeleteUnit)
			admin.POST("/units/:id/positions", referenceController.CreateUnitPosition)
			admin.PUT("/positions/:id", referenceController.UpdateUnitPosition)
			admin.DELETE("/positions/:id", referenceController.DeleteUnitPosition)
			admin.POST("/forms", referenceController.CreateForm)
			admin.DELETE("/forms/:id", referenceController.DeleteForm)

			// Roster management
			admin.PUT("/personnel/:id/assignment", personnelController.UpdateAssignment)
			admin.POST("/personnel/:id/awards", personnelController.GrantAward)
			admin.PUT("/personnel/:id/qualifications", qualificationController.UpdateProgress)
			admin.POST("/awards", personnelController.CreateAward)
			admin.DELETE("/awards/:id", personnelController.DeleteAward)
			admin.POST("/qualifications", qualificationController.CreateQualification)
			admin.DELETE("/qualifications/:id", qualificationController.DeleteQualification)

			// Calendar management
			admin.POST("/events", eventController.CreateEvent)
			admin.PUT("/events/:id", eventController.UpdateEvent)
			admin.DELETE("/events/:id", eventController.DeleteEvent)

			// Account administration
			admin.GET("/users", userController.ListUsers)
			admin.GET("/users/:id", userController.GetUser)
			admin.PUT("/users/:id/active", userController.SetActive)
		}
	}
}

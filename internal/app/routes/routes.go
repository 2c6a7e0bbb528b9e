package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mbenali/gestion-etudiants/internal/app/controllers"
	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	formationController *controllers.FormationController,
	studentController *controllers.StudentController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	adminRequired := authMiddleware.RoleRequired(string(models.RoleAdmin))

	// Public liveness route
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Bienvenue sur l'API de gestion des étudiants"})
	})

	// --- Public Auth routes ---
	router.POST("/login", authController.Login)

	// --- Authenticated profile route ---
	router.GET("/users/me", authMiddleware.JWTAuth(), authController.GetProfile)

	// Department routes (reads public, writes admin-only)
	departments := router.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.POST("", authMiddleware.JWTAuth(), adminRequired, departmentController.CreateDepartment)
	}

	// Formation routes (reads public, writes admin-only)
	formations := router.Group("/formations")
	{
		formations.GET("", formationController.GetAllFormations)
		formations.GET("/:id", formationController.GetFormationByID)
		formations.POST("", authMiddleware.JWTAuth(), adminRequired, formationController.CreateFormation)
	}

	// Student routes, all behind authentication
	students := router.Group("/students")
	students.Use(authMiddleware.JWTAuth())
	{
		// Creating and listing students is restricted to admins
		studentsAdminProtected := students.Group("")
		studentsAdminProtected.Use(adminRequired)
		{
			studentsAdminProtected.POST("", studentController.CreateStudent)
			studentsAdminProtected.GET("", studentController.GetAllStudents)
		}

		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)

		// Enrollment management
		students.POST("/:id/enroll/:formationId", enrollmentController.Enroll)
		students.DELETE("/:id/unenroll/:formationId", enrollmentController.Unenroll)
		students.GET("/:id/formations", enrollmentController.ListFormations)
	}
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studenthub/internal/app/controllers"
	"github.com/yigit/studenthub/internal/app/models/dto"
	"github.com/yigit/studenthub/internal/middleware"
)

// SetupRouter configures all application routes. With authEnabled false every
// student route is open and the auth endpoints are not mounted at all.
func SetupRouter(
	router *gin.Engine,
	homeController *controllers.HomeController,
	studentController *controllers.StudentController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
	authEnabled bool,
) {
	router.GET("/", homeController.Index)

	// --- Public student routes ---
	students := router.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/search", studentController.SearchStudents)
		students.GET("/:id", studentController.GetStudentByID)
	}

	if !authEnabled {
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.ReplaceStudent)
		students.PATCH("/:id", studentController.PatchStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	} else {
		// --- Authenticated student routes ---
		studentsAuth := students.Group("")
		studentsAuth.Use(authMiddleware.JWTAuth())
		{
			studentsAuth.POST("", studentController.CreateStudent)

			// Mutating an existing record additionally needs the admin role
			studentsAdmin := studentsAuth.Group("")
			studentsAdmin.Use(authMiddleware.AdminRequired())
			{
				studentsAdmin.PUT("/:id", studentController.ReplaceStudent)
				studentsAdmin.PATCH("/:id", studentController.PatchStudent)
				studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		// --- Auth routes ---
		auth := router.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
		}
	}

	// Any unmatched route gets the same envelope as every other error
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Endpoint not found"))
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeController serves the endpoint directory at the API root
type HomeController struct{}

// NewHomeController creates a new HomeController
func NewHomeController() *HomeController {
	return &HomeController{}
}

// Index lists the available endpoints
// @Summary API endpoint directory
// @Tags home
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (c *HomeController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Student Records API",
		"endpoints": gin.H{
			"GET /students":              "Get all students",
			"GET /students/:id":          "Get a specific student",
			"GET /students/search?name=": "Search students by name, course or grade",
			"POST /students":             "Create a new student (authenticated)",
			"PUT /students/:id":          "Update a student, full update (admin)",
			"PATCH /students/:id":        "Update a student, partial update (admin)",
			"DELETE /students/:id":       "Delete a student (admin)",
			"POST /auth/register":        "Register a new user",
			"POST /auth/login":           "Log in and receive a token",
			"GET /auth/me":               "Get the current identity (authenticated)",
		},
	})
}

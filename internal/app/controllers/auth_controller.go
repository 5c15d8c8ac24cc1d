// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/app/models/dto"
	"github.com/yigit/studenthub/internal/app/services"
	"github.com/yigit/studenthub/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a user account. Role defaults to "user" unless "admin" is requested.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.Response{data=models.PublicUser}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("User registered successfully", user))
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns a session token valid for 24 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.Response{data=dto.LoginResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Login successful", result))
}

// Me returns the identity derived from the verified token claims
// @Summary Get current identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=models.PublicUser}
// @Failure 401 {object} dto.Response
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(models.PublicUser{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}))
}

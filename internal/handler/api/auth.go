package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "lesson-scheduler/internal/handler/dto/request"
	resdto "lesson-scheduler/internal/handler/dto/response"
	"lesson-scheduler/internal/handler/httperr"
	"lesson-scheduler/internal/handler/middleware"
	"lesson-scheduler/internal/pkg/config"
	"lesson-scheduler/internal/pkg/cookie"
	"lesson-scheduler/internal/pkg/errs"
	"lesson-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cfg:         cfg,
	}
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	token, userView, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials),
			errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	duration, err := time.ParseDuration(h.cfg.JWT.Duration)
	if err != nil {
		duration = 24 * time.Hour
	}
	cookie.SetAccessTokenCookie(c, h.cfg.Cookie, token, duration)

	response := resdto.LoginResponse{
		AccessToken: token,
		User:        userView,
	}
	c.JSON(http.StatusOK, response)
}

// @Summary User logout
// @Description Logout current user session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user_id missing from context"), "Unauthorized", nil)
		return
	}

	userView, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, userView)
}

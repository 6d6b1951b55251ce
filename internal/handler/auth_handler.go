// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"scene-backend/internal/services"
	"scene-backend/internal/transport/httpdto"
	scene_errors "scene-backend/pkg/errors"
	"scene-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const accessTokenCookie = "access_token"

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
	logger  *logger.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService, l *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: l}
}

// writeError maps the error to a status and emits the endpoint's fixed
// detail string; the underlying cause never reaches the caller.
func writeError(c *gin.Context, err error, detail string) {
	c.JSON(services.HTTPStatus(err), httpdto.NewErrorResponse(detail))
}

// Signup handles user registration.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, scene_errors.ErrInvalidInput, "Invalid request")
		return
	}

	h.logger.Infof("Signup request for email: %s", req.Email)

	token, err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, scene_errors.ErrEmailTaken) {
			h.logger.Warnf("Email %s already registered", req.Email)
			writeError(c, err, "Email already registered")
			return
		}
		h.logger.Errorf("Failed to create user %s: %s", req.Email, err)
		writeError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, httpdto.SignupResponse{
		Message:     "User created successfully",
		AccessToken: token,
	})
}

// Login handles user authentication and sets the token cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, scene_errors.ErrInvalidInput, "Invalid request")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, scene_errors.ErrInvalidCredentials) {
			h.logger.Warnf("Invalid login attempt for email: %s", req.Email)
			writeError(c, err, "Invalid credentials")
			return
		}
		h.logger.Errorf("Login failed for %s: %s", req.Email, err)
		writeError(c, err, "Internal server error")
		return
	}

	c.SetCookie(accessTokenCookie, res.AccessToken, 0, "/", "", false, true)

	c.JSON(http.StatusOK, httpdto.LoginResponse{
		AccessToken: res.AccessToken,
		User: httpdto.AuthUserDTO{
			Name:  res.User.Name,
			Email: res.User.Email,
			ID:    res.User.ID,
		},
	})
}

// Logout clears the token cookie. Stateless: a previously issued token
// stays valid until its own expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "Logged out successfully"})
}

// Me echoes the claims of the verified bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := services.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Unauthorized"))
		return
	}

	c.JSON(http.StatusOK, httpdto.MeResponse{
		ID:    claims.ID,
		Email: claims.Email,
	})
}

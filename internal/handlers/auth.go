package handlers

import (
	"errors"
	"net/http"

	"github.com/DoaaAltair/Elite-Home/internal/dto"
	"github.com/DoaaAltair/Elite-Home/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles register and login.
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary      Register an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password required"})
		return
	}
	a, err := h.svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "username and password required"})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "username already taken"})
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.RegisterResponse{ID: a.ID})
}

// Login godoc
// @Summary      Verify account credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password required"})
		return
	}
	a, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "username and password required"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid username or password"})
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Username: a.Username})
}

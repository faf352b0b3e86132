package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/fundvault/internal/domain/errors"
	"github.com/polkiloo/fundvault/internal/server/http/dto"
	"github.com/polkiloo/fundvault/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, dto.ErrInvalidRequest)
		return
	}

	if err := h.facade.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			respondError(c, http.StatusBadRequest, dto.ErrInvalidRequest)
			return
		}
		respondDomainError(c, err)
		return
	}

	respondMessage(c, dto.MessageRegistered)
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, dto.ErrInvalidRequest)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// ResetPassword handles POST /reset-password. The caller id is empty when
// the route is mounted without the auth gate.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, dto.ErrInvalidRequest)
		return
	}

	err := h.facade.ResetPassword(c.Request.Context(), CurrentUserID(c), req.Username, req.NewPassword)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			respondError(c, http.StatusBadRequest, dto.ErrInvalidRequest)
			return
		}
		respondDomainError(c, err)
		return
	}

	respondMessage(c, dto.MessagePasswordReset)
}

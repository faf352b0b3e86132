package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/fundvault/internal/domain/errors"
	"github.com/polkiloo/fundvault/internal/server/http/dto"
	"github.com/polkiloo/fundvault/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

// respondDomainError maps domain errors to HTTP responses. Unknown errors are
// attached to the context so the request logger records them.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidFund):
		respondError(c, http.StatusBadRequest, dto.ErrInvalidRequest)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrInvalidCredentials)
	case errors.Is(err, domainErrors.ErrForbidden):
		respondError(c, http.StatusForbidden, dto.ErrForbidden)
	case errors.Is(err, domainErrors.ErrNotFound):
		respondError(c, http.StatusNotFound, dto.ErrUserNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrUserExists)
	case errors.Is(err, domainErrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrConflict)
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, dto.ErrServer)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/fundvault/internal/server/http/dto"
)

// FundHandler manages saved-fund endpoints.
type FundHandler struct {
	facade SavedFundsFacade
}

// NewFundHandler constructs FundHandler.
func NewFundHandler(facade SavedFundsFacade) *FundHandler {
	return &FundHandler{facade: facade}
}

// List handles GET /saved.
func (h *FundHandler) List(c *gin.Context) {
	funds, err := h.facade.SavedFunds(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, funds)
}

// Save handles POST /save.
func (h *FundHandler) Save(c *gin.Context) {
	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, dto.ErrInvalidRequest)
		return
	}

	if err := h.facade.SaveFund(c.Request.Context(), CurrentUserID(c), req.Fund); err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, dto.MessageSaved)
}

// Remove handles POST /remove.
func (h *FundHandler) Remove(c *gin.Context) {
	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, dto.ErrInvalidRequest)
		return
	}

	if err := h.facade.RemoveFund(c.Request.Context(), CurrentUserID(c), req.Fund); err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, dto.MessageRemoved)
}

package dto

import "github.com/polkiloo/fundvault/internal/domain/model"

// FundRequest wraps a fund record for /save and /remove.
type FundRequest struct {
	Fund model.Fund `json:"fund" binding:"required"`
}

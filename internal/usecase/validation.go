package usecase

import (
	"strings"

	"github.com/polkiloo/fundvault/internal/domain/model"
)

// ValidateFund checks that a fund record carries a usable identifier.
func ValidateFund(fund model.Fund) bool {
	id, ok := fund.ID()
	if !ok {
		return false
	}
	switch v := id.(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case map[string]any, []any:
		return false
	}
	return true
}

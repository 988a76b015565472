package entity

import "github.com/shopspring/decimal"

type DonationType struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	SuggestedAmount decimal.Decimal `json:"suggested_amount"`
	Icon            string          `json:"icon,omitempty"`
	IsActive        bool            `json:"is_active"`
	DisplayOrder    int             `json:"display_order"`
}

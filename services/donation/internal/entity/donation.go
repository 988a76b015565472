package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type DonationStatus string

const (
	StatusPending   DonationStatus = "PENDING"
	StatusCompleted DonationStatus = "COMPLETED"
	StatusFailed    DonationStatus = "FAILED"
)

const ProviderBankTransfer = "BANK_TRANSFER"

// MinDonationAmount is the smallest accepted pledge, in đồng.
var MinDonationAmount = decimal.NewFromInt(1000)

// MaxAmount is the largest whole amount a NUMERIC(18,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999999999")

func (s DonationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

type Donation struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Message     *string         `json:"message,omitempty"`
	Status      DonationStatus  `json:"status"`
	IsAnonymous bool            `json:"is_anonymous"`
	DonorName   *string         `json:"donor_name,omitempty"`
	DonorEmail  *string         `json:"donor_email,omitempty"`
	DonorPhone  *string         `json:"donor_phone,omitempty"`
	UserID      *string         `json:"user_id,omitempty"`
	TypeID      *string         `json:"type_id,omitempty"`
	GoalID      *string         `json:"goal_id,omitempty"`
	Type        *DonationType   `json:"type,omitempty"`
	Transaction *Transaction    `json:"transaction,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Transaction tracks the bank transfer settling one donation.
type Transaction struct {
	ID          string                 `json:"id"`
	DonationID  string                 `json:"donation_id"`
	Provider    string                 `json:"provider"`
	Amount      decimal.Decimal        `json:"amount"`
	Status      DonationStatus         `json:"status"`
	IPNVerified bool                   `json:"ipn_verified"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// DonationFilter selects a page of donations for the admin list.
// An empty Status means every status.
type DonationFilter struct {
	Status DonationStatus
	Page   int
	Limit  int
}

type DonationPage struct {
	Donations  []*Donation `json:"donations"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

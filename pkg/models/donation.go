package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "PENDING"
	DonationCompleted DonationStatus = "COMPLETED"
	DonationFailed    DonationStatus = "FAILED"
)

const ProviderBankTransfer = "BANK_TRANSFER"

type DonationType struct {
	ID              string          `gorm:"type:varchar(64);primary_key" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	SuggestedAmount decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"suggested_amount"`
	Icon            string          `gorm:"type:varchar(32)" json:"icon"`
	IsActive        bool            `gorm:"not null;default:true" json:"is_active"`
	DisplayOrder    int             `gorm:"not null;default:0" json:"display_order"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (t *DonationType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type Donation struct {
	ID          string          `gorm:"type:uuid;primary_key" json:"id"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Message     *string         `gorm:"type:varchar(500)" json:"message,omitempty"`
	Status      DonationStatus  `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	IsAnonymous bool            `gorm:"not null;default:false" json:"is_anonymous"`
	DonorName   *string         `gorm:"type:varchar(255)" json:"donor_name,omitempty"`
	DonorEmail  *string         `gorm:"type:varchar(255)" json:"donor_email,omitempty"`
	DonorPhone  *string         `gorm:"type:varchar(50)" json:"donor_phone,omitempty"`
	UserID      *string         `gorm:"type:uuid;index" json:"user_id,omitempty"`
	TypeID      *string         `gorm:"type:varchar(64);index" json:"type_id,omitempty"`
	GoalID      *string         `gorm:"type:uuid;index" json:"goal_id,omitempty"`
	Type        *DonationType   `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Transaction *Transaction    `gorm:"foreignKey:DonationID;constraint:OnDelete:CASCADE" json:"transaction,omitempty"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// Transaction is the settlement record owned by exactly one Donation.
type Transaction struct {
	ID          string            `gorm:"type:uuid;primary_key" json:"id"`
	DonationID  string            `gorm:"type:uuid;uniqueIndex;not null" json:"donation_id"`
	Provider    string            `gorm:"type:varchar(32);not null" json:"provider"`
	Amount      decimal.Decimal   `gorm:"type:numeric(18,2);not null" json:"amount"`
	Status      DonationStatus    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	IPNVerified bool              `gorm:"column:ipn_verified;not null;default:false" json:"ipn_verified"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

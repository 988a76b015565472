package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "ACTIVE"
	GoalCompleted GoalStatus = "COMPLETED"
	GoalArchived  GoalStatus = "ARCHIVED"
)

type Goal struct {
	ID           string          `gorm:"type:uuid;primary_key" json:"id"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	TargetAmount decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"target_amount"`
	// CurrentAmount is a cache kept in step by the approval transaction.
	// Read paths recompute the total from donations.
	CurrentAmount decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"current_amount"`
	Status        GoalStatus      `gorm:"type:varchar(20);not null;default:'ACTIVE';index" json:"status"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	DisplayOrder  int             `gorm:"not null;default:0" json:"display_order"`
	Milestones    []GoalMilestone `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"milestones,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

type GoalMilestone struct {
	ID          string          `gorm:"type:uuid;primary_key" json:"id"`
	GoalID      string          `gorm:"type:uuid;not null;index" json:"goal_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Achieved    bool            `gorm:"not null;default:false" json:"achieved"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (m *GoalMilestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

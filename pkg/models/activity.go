package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityDonation    ActivityType = "DONATION"
	ActivityGoalCreated ActivityType = "GOAL_CREATED"
)

// Activity rows are append-only. Content is rendered once at write time.
type Activity struct {
	ID        string            `gorm:"type:uuid;primary_key" json:"id"`
	Type      ActivityType      `gorm:"type:varchar(32);not null" json:"type"`
	Content   string            `gorm:"type:text;not null" json:"content"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"index" json:"created_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// All lists every schema model, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&DonationType{},
		&Goal{},
		&GoalMilestone{},
		&Donation{},
		&Transaction{},
		&Activity{},
	}
}

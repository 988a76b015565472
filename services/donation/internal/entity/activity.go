package entity

import "time"

type ActivityType string

const (
	ActivityDonation    ActivityType = "DONATION"
	ActivityGoalCreated ActivityType = "GOAL_CREATED"
)

type Activity struct {
	ID        string                 `json:"id"`
	Type      ActivityType           `json:"type"`
	Content   string                 `json:"content"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

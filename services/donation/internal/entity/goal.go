package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "ACTIVE"
	GoalCompleted GoalStatus = "COMPLETED"
	GoalArchived  GoalStatus = "ARCHIVED"
)

type Goal struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Status       GoalStatus      `json:"status"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	DisplayOrder int             `json:"display_order"`
	Milestones   []*Milestone    `json:"milestones"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Milestone struct {
	ID          string          `json:"id"`
	GoalID      string          `json:"goal_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Achieved    bool            `json:"achieved"`
}

// GoalProgress is a goal with its totals derived at read time.
type GoalProgress struct {
	*Goal
	CurrentAmount      decimal.Decimal `json:"current_amount"`
	ProgressPercent    int             `json:"progress_percent"`
	AchievedMilestones int             `json:"achieved_milestones"`
	TotalMilestones    int             `json:"total_milestones"`
	DaysRemaining      *int            `json:"days_remaining"`
}

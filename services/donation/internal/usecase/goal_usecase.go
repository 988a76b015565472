package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"lucky-money/pkg/logger"
	"lucky-money/pkg/money"
	"lucky-money/services/donation/internal/entity"
	"lucky-money/services/donation/internal/repo/persistent"

	"github.com/shopspring/decimal"
)

type MilestoneInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"max=1000"`
}

type CreateGoalInput struct {
	Title        string           `json:"title" validate:"required,max=255"`
	Description  string           `json:"description" validate:"max=5000"`
	TargetAmount decimal.Decimal  `json:"target_amount"`
	Deadline     *time.Time       `json:"deadline"`
	DisplayOrder int              `json:"display_order"`
	Milestones   []MilestoneInput `json:"milestones" validate:"dive"`
}

type GoalUseCase interface {
	ListActiveGoals(ctx context.Context) ([]*entity.GoalProgress, error)
	CreateGoal(ctx context.Context, input CreateGoalInput) (*entity.Goal, error)
}

type goalUseCase struct {
	goalRepo  persistent.GoalRepository
	publisher ActivityPublisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewGoalUseCase(goalRepo persistent.GoalRepository, publisher ActivityPublisher, logger *logger.Logger) GoalUseCase {
	return &goalUseCase{
		goalRepo:  goalRepo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *goalUseCase) ListActiveGoals(ctx context.Context) ([]*entity.GoalProgress, error) {
	goals, err := uc.goalRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("Failed to list goals: %v", err)
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}

	// The cached goals.current_amount column is never read here.
	totals, err := uc.goalRepo.CompletedTotals(ctx, ids)
	if err != nil {
		uc.logger.Error("Failed to sum goal donations: %v", err)
		return nil, fmt.Errorf("failed to sum goal donations: %w", err)
	}

	now := uc.now()
	result := make([]*entity.GoalProgress, len(goals))
	for i, g := range goals {
		result[i] = ProjectGoal(g, totals[g.ID], now)
	}
	return result, nil
}

func (uc *goalUseCase) CreateGoal(ctx context.Context, input CreateGoalInput) (*entity.Goal, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	verr := &ValidationError{}
	if msg := checkAmount(input.TargetAmount); msg != "" {
		verr.add("target_amount", msg)
	}
	for i, m := range input.Milestones {
		if msg := checkAmount(m.Amount); msg != "" {
			verr.add(fmt.Sprintf("milestones[%d].amount", i), msg)
		}
	}
	if err := collectFieldErrors(input, verr); err != nil {
		return nil, fmt.Errorf("failed to validate goal: %w", err)
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	goal := &entity.Goal{
		Title:        input.Title,
		Description:  input.Description,
		TargetAmount: input.TargetAmount,
		Status:       entity.GoalActive,
		Deadline:     input.Deadline,
		DisplayOrder: input.DisplayOrder,
	}
	for _, m := range input.Milestones {
		goal.Milestones = append(goal.Milestones, &entity.Milestone{
			Amount:      m.Amount,
			Description: strings.TrimSpace(m.Description),
		})
	}

	activity := goalCreatedActivity(goal)
	if err := uc.goalRepo.CreateWithActivity(ctx, goal, activity); err != nil {
		uc.logger.Error("Failed to create goal: %v", err)
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	uc.logger.Info("Goal %s created with %d milestones", goal.ID, len(goal.Milestones))
	publishActivity(uc.publisher, uc.logger, activity)
	return goal, nil
}

// ProjectGoal derives the progress fields of a goal from the sum of its
// completed donations. Milestone flags are read, never written.
func ProjectGoal(goal *entity.Goal, current decimal.Decimal, now time.Time) *entity.GoalProgress {
	progress := &entity.GoalProgress{
		Goal:            goal,
		CurrentAmount:   current,
		ProgressPercent: progressPercent(current, goal.TargetAmount),
		TotalMilestones: len(goal.Milestones),
		DaysRemaining:   daysRemaining(goal.Deadline, now),
	}

	for _, m := range goal.Milestones {
		if !m.Achieved && m.Amount.LessThanOrEqual(current) {
			progress.AchievedMilestones++
		}
	}
	return progress
}

func progressPercent(current, target decimal.Decimal) int {
	if !target.IsPositive() {
		return 0
	}

	pct := current.Mul(decimal.NewFromInt(100)).Div(target).Round(0).IntPart()
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}

func daysRemaining(deadline *time.Time, now time.Time) *int {
	if deadline == nil {
		return nil
	}

	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return &days
}

func checkAmount(amount decimal.Decimal) string {
	switch {
	case !amount.IsPositive():
		return "must be greater than zero"
	case amount.GreaterThan(entity.MaxAmount):
		return "must be at most " + money.FormatVND(entity.MaxAmount)
	}
	return ""
}

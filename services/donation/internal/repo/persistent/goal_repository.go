package persistent

import (
	"context"

	"lucky-money/pkg/models"
	"lucky-money/services/donation/internal/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalRepository interface {
	// ListActive returns ACTIVE goals ordered by deadline, goals without a
	// deadline last. Milestones are ordered by amount.
	ListActive(ctx context.Context) ([]*entity.Goal, error)
	// CompletedTotals sums COMPLETED donations per goal. Goals without any
	// completed donation are absent from the result.
	CompletedTotals(ctx context.Context, goalIDs []string) (map[string]decimal.Decimal, error)
	Exists(ctx context.Context, id string) (bool, error)
	// CreateWithActivity stores the goal, its milestones and the activity
	// announcing it in one transaction.
	CreateWithActivity(ctx context.Context, goal *entity.Goal, activity *entity.Activity) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) ListActive(ctx context.Context) ([]*entity.Goal, error) {
	var goalModels []models.Goal
	err := r.db.WithContext(ctx).
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("amount ASC")
		}).
		Where("status = ?", models.GoalActive).
		Order("deadline IS NULL").
		Order("deadline ASC").
		Order("display_order ASC").
		Find(&goalModels).Error
	if err != nil {
		return nil, err
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = ToGoalEntity(&goalModels[i])
	}
	return goals, nil
}

type goalAmountRow struct {
	GoalID string
	Amount decimal.Decimal
}

func (r *goalRepository) CompletedTotals(ctx context.Context, goalIDs []string) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	if len(goalIDs) == 0 {
		return totals, nil
	}

	// Rows are summed here with decimal arithmetic so the result does not
	// depend on how the driver returns numeric aggregates.
	var rows []goalAmountRow
	err := r.db.WithContext(ctx).
		Model(&models.Donation{}).
		Select("goal_id", "amount").
		Where("status = ? AND goal_id IN ?", models.DonationCompleted, goalIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		totals[row.GoalID] = totals[row.GoalID].Add(row.Amount)
	}
	return totals, nil
}

func (r *goalRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Goal{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *goalRepository) CreateWithActivity(ctx context.Context, goal *entity.Goal, activity *entity.Activity) error {
	goalModel := ToGoalModel(goal)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(goalModel).Error; err != nil {
			return err
		}

		if activity.Metadata == nil {
			activity.Metadata = map[string]interface{}{}
		}
		activity.Metadata["goal_id"] = goalModel.ID

		activityModel := ToActivityModel(activity)
		if err := tx.Create(activityModel).Error; err != nil {
			return err
		}
		*activity = *ToActivityEntity(activityModel)
		return nil
	})
	if err != nil {
		return err
	}

	*goal = *ToGoalEntity(goalModel)
	return nil
}

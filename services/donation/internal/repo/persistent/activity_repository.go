package persistent

import (
	"context"

	"lucky-money/pkg/models"
	"lucky-money/services/donation/internal/entity"

	"gorm.io/gorm"
)

// ActivityRepository only reads. Activities are written inside the
// transactions that produce them.
type ActivityRepository interface {
	ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	var activityModels []models.Activity
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&activityModels).Error
	if err != nil {
		return nil, err
	}

	activities := make([]*entity.Activity, len(activityModels))
	for i := range activityModels {
		activities[i] = ToActivityEntity(&activityModels[i])
	}
	return activities, nil
}

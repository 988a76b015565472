package persistent

import (
	"context"

	"lucky-money/pkg/models"
	"lucky-money/services/donation/internal/entity"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	ListActive(ctx context.Context) ([]*entity.DonationType, error)
	ActiveTypeExists(ctx context.Context, id string) (bool, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListActive(ctx context.Context) ([]*entity.DonationType, error) {
	var typeModels []models.DonationType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("suggested_amount ASC").
		Order("display_order ASC").
		Find(&typeModels).Error
	if err != nil {
		return nil, err
	}

	types := make([]*entity.DonationType, len(typeModels))
	for i := range typeModels {
		types[i] = ToDonationTypeEntity(&typeModels[i])
	}
	return types, nil
}

func (r *catalogRepository) ActiveTypeExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.DonationType{}).
		Where("id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count > 0, err
}

package persistent

import (
	"context"
	"errors"

	"lucky-money/pkg/models"
	"lucky-money/services/donation/internal/entity"

	"gorm.io/gorm"
)

type DonationRepository interface {
	// Create stores a donation and its transaction together.
	Create(ctx context.Context, donation *entity.Donation) error
	GetByID(ctx context.Context, id string) (*entity.Donation, error)
	List(ctx context.Context, filter entity.DonationFilter) ([]*entity.Donation, int64, error)
	FindByIDPrefix(ctx context.Context, prefix string, status entity.DonationStatus) ([]*entity.Donation, error)
}

type donationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	donationModel := ToDonationModel(donation)
	transactionModel := ToTransactionModel(donation.Transaction)
	if transactionModel == nil {
		return errors.New("donation has no transaction")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donationModel).Error; err != nil {
			return err
		}
		transactionModel.DonationID = donationModel.ID
		return tx.Create(transactionModel).Error
	})
	if err != nil {
		return err
	}

	donationModel.Transaction = transactionModel
	*donation = *ToDonationEntity(donationModel)
	return nil
}

func (r *donationRepository) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	var donationModel models.Donation
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Transaction").
		Where("id = ?", id).
		First(&donationModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToDonationEntity(&donationModel), nil
}

func (r *donationRepository) List(ctx context.Context, filter entity.DonationFilter) ([]*entity.Donation, int64, error) {
	byStatus := func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			return db.Where("status = ?", filter.Status)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Donation{}).Scopes(byStatus).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var donationModels []models.Donation
	offset := (filter.Page - 1) * filter.Limit
	err := r.db.WithContext(ctx).
		Scopes(byStatus).
		Preload("Type").
		Preload("Transaction").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&donationModels).Error
	if err != nil {
		return nil, 0, err
	}

	donations := make([]*entity.Donation, len(donationModels))
	for i := range donationModels {
		donations[i] = ToDonationEntity(&donationModels[i])
	}
	return donations, total, nil
}

func (r *donationRepository) FindByIDPrefix(ctx context.Context, prefix string, status entity.DonationStatus) ([]*entity.Donation, error) {
	var donationModels []models.Donation
	query := r.db.WithContext(ctx).
		Preload("Transaction").
		Where("CAST(id AS TEXT) LIKE ?", prefix+"%")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at ASC").Find(&donationModels).Error; err != nil {
		return nil, err
	}

	donations := make([]*entity.Donation, len(donationModels))
	for i := range donationModels {
		donations[i] = ToDonationEntity(&donationModels[i])
	}
	return donations, nil
}

package persistent

import (
	"context"
	"errors"
	"fmt"

	"lucky-money/pkg/models"
	"lucky-money/services/donation/internal/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReconciliationStore runs settlement steps inside one database transaction.
// Returning an error from fn rolls every step back.
type ReconciliationStore interface {
	RunInTx(ctx context.Context, fn func(tx ReconciliationTx) error) error
}

// ReconciliationTx is the set of writes a settlement may perform. All of
// them share the transaction opened by RunInTx.
type ReconciliationTx interface {
	// GetDonationForUpdate loads the donation with its transaction and locks
	// the donation row until commit.
	GetDonationForUpdate(id string) (*entity.Donation, error)
	// TransitionDonation moves the donation from one status to another and
	// reports false when the donation was no longer in the from status.
	TransitionDonation(id string, from, to entity.DonationStatus) (bool, error)
	SettleTransaction(donationID string, status entity.DonationStatus, verified bool, metadata map[string]interface{}) error
	AddToGoalTotal(goalID string, amount decimal.Decimal) error
	CreateActivity(activity *entity.Activity) error
}

type reconciliationStore struct {
	db *gorm.DB
}

func NewReconciliationStore(db *gorm.DB) ReconciliationStore {
	return &reconciliationStore{db: db}
}

func (s *reconciliationStore) RunInTx(ctx context.Context, fn func(tx ReconciliationTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&reconciliationTx{tx: tx})
	})
}

type reconciliationTx struct {
	tx *gorm.DB
}

func (r *reconciliationTx) GetDonationForUpdate(id string) (*entity.Donation, error) {
	var donationModel models.Donation
	err := r.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&donationModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var transactionModel models.Transaction
	err = r.tx.Where("donation_id = ?", id).First(&transactionModel).Error
	switch {
	case err == nil:
		donationModel.Transaction = &transactionModel
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	return ToDonationEntity(&donationModel), nil
}

func (r *reconciliationTx) TransitionDonation(id string, from, to entity.DonationStatus) (bool, error) {
	result := r.tx.
		Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *reconciliationTx) SettleTransaction(donationID string, status entity.DonationStatus, verified bool, metadata map[string]interface{}) error {
	result := r.tx.
		Model(&models.Transaction{}).
		Where("donation_id = ?", donationID).
		Updates(map[string]interface{}{
			"status":       status,
			"ipn_verified": verified,
			"metadata":     toJSONMap(metadata),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("transaction for donation %s: %w", donationID, ErrNotFound)
	}
	return nil
}

func (r *reconciliationTx) AddToGoalTotal(goalID string, amount decimal.Decimal) error {
	return r.tx.
		Model(&models.Goal{}).
		Where("id = ?", goalID).
		Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error
}

func (r *reconciliationTx) CreateActivity(activity *entity.Activity) error {
	activityModel := ToActivityModel(activity)
	if err := r.tx.Create(activityModel).Error; err != nil {
		return err
	}
	*activity = *ToActivityEntity(activityModel)
	return nil
}

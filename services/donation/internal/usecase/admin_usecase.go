package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lucky-money/pkg/logger"
	"lucky-money/pkg/vietqr"
	"lucky-money/services/donation/internal/entity"
	"lucky-money/services/donation/internal/repo/persistent"

	"github.com/google/uuid"
)

const (
	DefaultAdminPageSize = 20
	MaxAdminPageSize     = 100
)

// TransferMatch is the result of looking up a bank statement memo.
type TransferMatch struct {
	Prefix    string             `json:"prefix"`
	Donations []*entity.Donation `json:"donations"`
}

type AdminUseCase interface {
	ListDonations(ctx context.Context, filter entity.DonationFilter) (*entity.DonationPage, error)
	// ApproveDonation settles a PENDING donation. The donation, its
	// transaction, the goal total and the feed entry change together or not
	// at all.
	ApproveDonation(ctx context.Context, donationID, adminID string) (*entity.Donation, error)
	RejectDonation(ctx context.Context, donationID, adminID, reason string) (*entity.Donation, error)
	MatchTransfer(ctx context.Context, memo string) (*TransferMatch, error)
}

type adminUseCase struct {
	donationRepo persistent.DonationRepository
	store        persistent.ReconciliationStore
	publisher    ActivityPublisher
	memoTag      string
	logger       *logger.Logger
	now          func() time.Time
}

func NewAdminUseCase(
	donationRepo persistent.DonationRepository,
	store persistent.ReconciliationStore,
	publisher ActivityPublisher,
	memoTag string,
	logger *logger.Logger,
) AdminUseCase {
	if memoTag == "" {
		memoTag = vietqr.DefaultMemoTag
	}
	return &adminUseCase{
		donationRepo: donationRepo,
		store:        store,
		publisher:    publisher,
		memoTag:      memoTag,
		logger:       logger,
		now:          time.Now,
	}
}

func (uc *adminUseCase) ListDonations(ctx context.Context, filter entity.DonationFilter) (*entity.DonationPage, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		verr := &ValidationError{}
		verr.add("status", "must be one of PENDING, COMPLETED, FAILED")
		return nil, verr
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultAdminPageSize
	}
	if filter.Limit > MaxAdminPageSize {
		filter.Limit = MaxAdminPageSize
	}

	donations, total, err := uc.donationRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list donations: %v", err)
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	return &entity.DonationPage{
		Donations:  donations,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}, nil
}

func (uc *adminUseCase) ApproveDonation(ctx context.Context, donationID, adminID string) (*entity.Donation, error) {
	if _, err := uuid.Parse(donationID); err != nil {
		return nil, ErrDonationNotFound
	}

	var (
		approved *entity.Donation
		activity *entity.Activity
	)

	err := uc.store.RunInTx(ctx, func(tx persistent.ReconciliationTx) error {
		donation, err := uc.lockPending(tx, donationID)
		if err != nil {
			return err
		}

		ok, err := tx.TransitionDonation(donation.ID, entity.StatusPending, entity.StatusCompleted)
		if err != nil {
			return fmt.Errorf("update donation: %w", err)
		}
		if !ok {
			return ErrDonationAlreadyProcessed
		}

		metadata := mergeMetadata(transactionMetadata(donation), map[string]interface{}{
			"verified_by": adminID,
			"verified_at": uc.now().UTC().Format(time.RFC3339),
		})
		if err := tx.SettleTransaction(donation.ID, entity.StatusCompleted, true, metadata); err != nil {
			return fmt.Errorf("update transaction: %w", err)
		}

		if donation.GoalID != nil {
			if err := tx.AddToGoalTotal(*donation.GoalID, donation.Amount); err != nil {
				return fmt.Errorf("update goal total: %w", err)
			}
		}

		activity = donationActivity(donation)
		if err := tx.CreateActivity(activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		donation.Status = entity.StatusCompleted
		if donation.Transaction != nil {
			donation.Transaction.Status = entity.StatusCompleted
			donation.Transaction.IPNVerified = true
			donation.Transaction.Metadata = metadata
		}
		approved = donation
		return nil
	})
	if err != nil {
		return nil, uc.settlementError("approve", donationID, err)
	}

	uc.logger.Info("Donation %s approved by %s", donationID, adminID)
	publishActivity(uc.publisher, uc.logger, activity)
	return approved, nil
}

func (uc *adminUseCase) RejectDonation(ctx context.Context, donationID, adminID, reason string) (*entity.Donation, error) {
	if _, err := uuid.Parse(donationID); err != nil {
		return nil, ErrDonationNotFound
	}

	var rejected *entity.Donation

	err := uc.store.RunInTx(ctx, func(tx persistent.ReconciliationTx) error {
		donation, err := uc.lockPending(tx, donationID)
		if err != nil {
			return err
		}

		ok, err := tx.TransitionDonation(donation.ID, entity.StatusPending, entity.StatusFailed)
		if err != nil {
			return fmt.Errorf("update donation: %w", err)
		}
		if !ok {
			return ErrDonationAlreadyProcessed
		}

		extra := map[string]interface{}{
			"rejected_by": adminID,
			"rejected_at": uc.now().UTC().Format(time.RFC3339),
		}
		if reason = strings.TrimSpace(reason); reason != "" {
			extra["reject_reason"] = reason
		}
		metadata := mergeMetadata(transactionMetadata(donation), extra)
		if err := tx.SettleTransaction(donation.ID, entity.StatusFailed, false, metadata); err != nil {
			return fmt.Errorf("update transaction: %w", err)
		}

		donation.Status = entity.StatusFailed
		if donation.Transaction != nil {
			donation.Transaction.Status = entity.StatusFailed
			donation.Transaction.Metadata = metadata
		}
		rejected = donation
		return nil
	})
	if err != nil {
		return nil, uc.settlementError("reject", donationID, err)
	}

	uc.logger.Info("Donation %s rejected by %s", donationID, adminID)
	return rejected, nil
}

func (uc *adminUseCase) MatchTransfer(ctx context.Context, memo string) (*TransferMatch, error) {
	prefix, ok := vietqr.ParseMemo(uc.memoTag, memo)
	if !ok {
		return nil, ErrMemoNotRecognized
	}

	donations, err := uc.donationRepo.FindByIDPrefix(ctx, prefix, entity.StatusPending)
	if err != nil {
		uc.logger.Error("Failed to match transfer memo: %v", err)
		return nil, fmt.Errorf("failed to match transfer: %w", err)
	}
	return &TransferMatch{Prefix: prefix, Donations: donations}, nil
}

// lockPending loads and locks the donation, failing before any write when it
// is missing or no longer PENDING.
func (uc *adminUseCase) lockPending(tx persistent.ReconciliationTx, donationID string) (*entity.Donation, error) {
	donation, err := tx.GetDonationForUpdate(donationID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, fmt.Errorf("load donation: %w", err)
	}
	if donation.Status != entity.StatusPending {
		return nil, ErrDonationAlreadyProcessed
	}
	return donation, nil
}

func (uc *adminUseCase) settlementError(action, donationID string, err error) error {
	if errors.Is(err, ErrDonationNotFound) || errors.Is(err, ErrDonationAlreadyProcessed) {
		return err
	}
	uc.logger.Error("Failed to %s donation %s: %v", action, donationID, err)
	return fmt.Errorf("failed to %s donation: %w", action, err)
}

func transactionMetadata(donation *entity.Donation) map[string]interface{} {
	if donation.Transaction == nil {
		return nil
	}
	return donation.Transaction.Metadata
}

// mergeMetadata copies existing and overlays extra. Existing keys not in
// extra are kept.
func mergeMetadata(existing, extra map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(existing)+len(extra))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lucky-money/pkg/logger"
	"lucky-money/pkg/money"
	"lucky-money/pkg/vietqr"
	"lucky-money/services/donation/internal/entity"
	"lucky-money/services/donation/internal/repo/persistent"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentPagePath is where the donor is sent to see the transfer QR code.
const PaymentPagePath = "/donate/payment/"

type SubmitDonationInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Message     string          `json:"message" validate:"max=500"`
	IsAnonymous bool            `json:"is_anonymous"`
	DonorName   string          `json:"donor_name" validate:"required_if=IsAnonymous false,max=255"`
	DonorEmail  string          `json:"donor_email" validate:"omitempty,email,max=255"`
	DonorPhone  string          `json:"donor_phone" validate:"omitempty,max=50"`
	TypeID      string          `json:"type_id" validate:"max=64"`
	GoalID      string          `json:"goal_id"`
	// UserID is the signed-in donor, empty for guests.
	UserID string `json:"-"`
}

type SubmitResult struct {
	Donation    *entity.Donation
	RedirectURL string
}

type DonationUseCase interface {
	Submit(ctx context.Context, input SubmitDonationInput) (*SubmitResult, error)
	GetDonation(ctx context.Context, donationID string) (*entity.Donation, error)
	GetPaymentInfo(ctx context.Context, donationID string) (*vietqr.PaymentInfo, error)
}

type donationUseCase struct {
	donationRepo persistent.DonationRepository
	catalogRepo  persistent.CatalogRepository
	goalRepo     persistent.GoalRepository
	qrBuilder    *vietqr.Builder
	logger       *logger.Logger
}

func NewDonationUseCase(
	donationRepo persistent.DonationRepository,
	catalogRepo persistent.CatalogRepository,
	goalRepo persistent.GoalRepository,
	qrBuilder *vietqr.Builder,
	logger *logger.Logger,
) DonationUseCase {
	return &donationUseCase{
		donationRepo: donationRepo,
		catalogRepo:  catalogRepo,
		goalRepo:     goalRepo,
		qrBuilder:    qrBuilder,
		logger:       logger,
	}
}

func (uc *donationUseCase) Submit(ctx context.Context, input SubmitDonationInput) (*SubmitResult, error) {
	input = normalizeSubmission(input)

	if err := uc.validateSubmission(ctx, input); err != nil {
		return nil, err
	}

	donation := &entity.Donation{
		Amount:      input.Amount,
		Message:     optional(input.Message),
		Status:      entity.StatusPending,
		IsAnonymous: input.IsAnonymous,
		DonorName:   optional(input.DonorName),
		DonorEmail:  optional(input.DonorEmail),
		DonorPhone:  optional(input.DonorPhone),
		UserID:      optional(input.UserID),
		TypeID:      optional(input.TypeID),
		GoalID:      optional(input.GoalID),
		Transaction: &entity.Transaction{
			Provider: entity.ProviderBankTransfer,
			Amount:   input.Amount,
			Status:   entity.StatusPending,
		},
	}

	if err := uc.donationRepo.Create(ctx, donation); err != nil {
		uc.logger.Error("Failed to create donation: %v", err)
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	uc.logger.Info("Donation %s pledged for %s", donation.ID, money.FormatVND(donation.Amount))
	return &SubmitResult{
		Donation:    donation,
		RedirectURL: PaymentPagePath + donation.ID,
	}, nil
}

func (uc *donationUseCase) GetDonation(ctx context.Context, donationID string) (*entity.Donation, error) {
	if _, err := uuid.Parse(donationID); err != nil {
		return nil, ErrDonationNotFound
	}

	donation, err := uc.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrDonationNotFound
		}
		uc.logger.Error("Failed to get donation: %v", err)
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return donation, nil
}

func (uc *donationUseCase) GetPaymentInfo(ctx context.Context, donationID string) (*vietqr.PaymentInfo, error) {
	donation, err := uc.GetDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	info := uc.qrBuilder.Build(donation.ID, donation.Amount)
	return &info, nil
}

// validateSubmission checks every field before anything is written and
// reports all problems at once.
func (uc *donationUseCase) validateSubmission(ctx context.Context, input SubmitDonationInput) error {
	verr := &ValidationError{}

	switch {
	case input.Amount.LessThan(entity.MinDonationAmount):
		verr.add("amount", "must be at least "+money.FormatVND(entity.MinDonationAmount))
	case input.Amount.GreaterThan(entity.MaxAmount):
		verr.add("amount", "must be at most "+money.FormatVND(entity.MaxAmount))
	case !input.Amount.IsInteger():
		verr.add("amount", "must be a whole number")
	}

	if err := collectFieldErrors(input, verr); err != nil {
		return fmt.Errorf("failed to validate donation: %w", err)
	}

	if input.TypeID != "" {
		ok, err := uc.catalogRepo.ActiveTypeExists(ctx, input.TypeID)
		if err != nil {
			uc.logger.Error("Failed to check donation type: %v", err)
			return fmt.Errorf("failed to check donation type: %w", err)
		}
		if !ok {
			verr.add("type_id", "unknown donation type")
		}
	}

	if input.GoalID != "" {
		ok := false
		if _, err := uuid.Parse(input.GoalID); err == nil {
			ok, err = uc.goalRepo.Exists(ctx, input.GoalID)
			if err != nil {
				uc.logger.Error("Failed to check goal: %v", err)
				return fmt.Errorf("failed to check goal: %w", err)
			}
		}
		if !ok {
			verr.add("goal_id", "unknown goal")
		}
	}

	return verr.orNil()
}

func normalizeSubmission(input SubmitDonationInput) SubmitDonationInput {
	input.Message = strings.TrimSpace(input.Message)
	input.DonorName = strings.TrimSpace(input.DonorName)
	input.DonorEmail = strings.TrimSpace(input.DonorEmail)
	input.DonorPhone = strings.TrimSpace(input.DonorPhone)
	input.TypeID = strings.TrimSpace(input.TypeID)
	input.GoalID = strings.TrimSpace(input.GoalID)
	return input
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

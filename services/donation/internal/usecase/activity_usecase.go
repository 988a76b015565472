package usecase

import (
	"context"
	"fmt"

	"lucky-money/pkg/logger"
	"lucky-money/pkg/money"
	"lucky-money/pkg/queue"
	"lucky-money/services/donation/internal/entity"
	"lucky-money/services/donation/internal/repo/persistent"
)

const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 50

	anonymousDonor = "An anonymous person"
	unnamedDonor   = "Someone"
)

// ActivityPublisher forwards committed activities to other consumers.
// *queue.Client satisfies it.
type ActivityPublisher interface {
	PublishActivity(event queue.ActivityEvent) error
}

type ActivityUseCase interface {
	ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}

type activityUseCase struct {
	activityRepo persistent.ActivityRepository
	logger       *logger.Logger
}

func NewActivityUseCase(activityRepo persistent.ActivityRepository, logger *logger.Logger) ActivityUseCase {
	return &activityUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *activityUseCase) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	activities, err := uc.activityRepo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list activities: %v", err)
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// donationActivity renders the feed entry for a completed donation. The
// content is fixed at write time and never re-rendered.
func donationActivity(donation *entity.Donation) *entity.Activity {
	donor := anonymousDonor
	if !donation.IsAnonymous {
		donor = unnamedDonor
		if donation.DonorName != nil && *donation.DonorName != "" {
			donor = *donation.DonorName
		}
	}

	return &entity.Activity{
		Type:    entity.ActivityDonation,
		Content: fmt.Sprintf("%s donated %s", donor, money.FormatVND(donation.Amount)),
		Metadata: map[string]interface{}{
			"donation_id": donation.ID,
			"amount":      donation.Amount.String(),
		},
	}
}

func goalCreatedActivity(goal *entity.Goal) *entity.Activity {
	return &entity.Activity{
		Type:    entity.ActivityGoalCreated,
		Content: fmt.Sprintf("New goal %q was created", goal.Title),
		Metadata: map[string]interface{}{
			"goal_title": goal.Title,
		},
	}
}

// publishActivity is best effort: the activity is already committed and a
// broker outage must not fail the request.
func publishActivity(publisher ActivityPublisher, log *logger.Logger, activity *entity.Activity) {
	if publisher == nil || activity == nil {
		return
	}

	event := queue.ActivityEvent{
		ID:        activity.ID,
		Type:      string(activity.Type),
		Content:   activity.Content,
		Metadata:  activity.Metadata,
		CreatedAt: activity.CreatedAt,
	}
	if err := publisher.PublishActivity(event); err != nil {
		log.Warn("Failed to publish activity %s: %v", activity.ID, err)
	}
}

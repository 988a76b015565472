package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lucky-money/pkg/models"
	"lucky-money/services/donation/internal/entity"
	"lucky-money/services/donation/internal/repo/persistent"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityUseCase_ListRecentLimits(t *testing.T) {
	db := newTestDB(t)
	uc := NewActivityUseCase(persistent.NewActivityRepository(db), quietLogger())
	base := time.Now().Add(-2 * time.Hour)

	for i := 0; i < MaxActivityLimit+5; i++ {
		require.NoError(t, db.Create(&models.Activity{
			Type:      models.ActivityDonation,
			Content:   "x",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}
	ctx := context.Background()

	activities, err := uc.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, activities, DefaultActivityLimit)

	activities, err = uc.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, activities, 3)

	activities, err = uc.ListRecent(ctx, 500)
	require.NoError(t, err)
	assert.Len(t, activities, MaxActivityLimit)
}

func TestDonationActivity_Content(t *testing.T) {
	name := "Hoa"
	empty := ""

	named := donationActivity(&entity.Donation{ID: "d1", Amount: decimal.NewFromInt(150000), DonorName: &name})
	assert.Equal(t, "Hoa donated 150.000₫", named.Content)
	assert.Equal(t, "150000", named.Metadata["amount"])
	assert.Equal(t, "d1", named.Metadata["donation_id"])

	unnamed := donationActivity(&entity.Donation{Amount: decimal.NewFromInt(2000), DonorName: &empty})
	assert.Equal(t, "Someone donated 2.000₫", unnamed.Content)

	anonymous := donationActivity(&entity.Donation{Amount: decimal.NewFromInt(2000), DonorName: &name, IsAnonymous: true})
	assert.Equal(t, "An anonymous person donated 2.000₫", anonymous.Content)
}

func TestDonationActivity_MetadataKeepsExactAmount(t *testing.T) {
	amount := decimal.RequireFromString("9007199254740993.25")

	activity := donationActivity(&entity.Donation{ID: "d2", Amount: amount, IsAnonymous: true})
	assert.Equal(t, "9007199254740993.25", activity.Metadata["amount"])
}

func TestPublishActivity_BrokerErrorIsSwallowed(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("connection closed")}
	activity := &entity.Activity{ID: "a1", Type: entity.ActivityDonation, Content: "x"}

	assert.NotPanics(t, func() { publishActivity(publisher, quietLogger(), activity) })
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "a1", publisher.events[0].ID)

	assert.NotPanics(t, func() { publishActivity(nil, quietLogger(), activity) })
}

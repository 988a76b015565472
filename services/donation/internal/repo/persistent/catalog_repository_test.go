package persistent

import (
	"context"
	"testing"
	"time"

	"lucky-money/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_ListActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	types := []models.DonationType{
		{ID: "big", Name: "Big", SuggestedAmount: decimal.NewFromInt(500000), IsActive: true},
		{ID: "small", Name: "Small", SuggestedAmount: decimal.NewFromInt(50000), IsActive: true},
		{ID: "hidden", Name: "Hidden", SuggestedAmount: decimal.NewFromInt(10000), IsActive: true},
	}
	require.NoError(t, db.Create(&types).Error)
	// is_active defaults to true, so deactivation is a separate update.
	require.NoError(t, db.Model(&models.DonationType{}).Where("id = ?", "hidden").Update("is_active", false).Error)

	listed, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "small", listed[0].ID)
	assert.Equal(t, "big", listed[1].ID)

	ok, err := repo.ActiveTypeExists(ctx, "small")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ActiveTypeExists(ctx, "hidden")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestActivityRepository_ListRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		activity := &models.Activity{
			Type:      models.ActivityDonation,
			Content:   "donation",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(activity).Error)
	}
	latest := &models.Activity{Type: models.ActivityGoalCreated, Content: "latest", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, db.Create(latest).Error)

	activities, err := repo.ListRecent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, latest.ID, activities[0].ID)
	assert.True(t, activities[1].CreatedAt.After(activities[2].CreatedAt))
}

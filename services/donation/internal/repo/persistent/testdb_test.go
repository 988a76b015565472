package persistent

import (
	"fmt"
	"testing"
	"time"

	"lucky-money/pkg/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func seedDonation(t *testing.T, db *gorm.DB, amount int64, status models.DonationStatus, goalID *string, createdAt time.Time) *models.Donation {
	t.Helper()
	donation := &models.Donation{
		Amount:    decimal.NewFromInt(amount),
		Status:    status,
		DonorName: strPtr("Donor"),
		GoalID:    goalID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(donation).Error)
	transaction := &models.Transaction{
		DonationID: donation.ID,
		Provider:   models.ProviderBankTransfer,
		Amount:     donation.Amount,
		Status:     status,
	}
	require.NoError(t, db.Create(transaction).Error)
	return donation
}

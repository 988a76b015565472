package usecase

import (
	"fmt"
	"io"
	"testing"
	"time"

	"lucky-money/pkg/logger"
	"lucky-money/pkg/models"
	"lucky-money/pkg/queue"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, zerolog.Disabled)
}

type pendingSeed struct {
	amount      int64
	donorName   string
	isAnonymous bool
	goalID      *string
	metadata    datatypes.JSONMap
}

func seedPending(t *testing.T, db *gorm.DB, seed pendingSeed) *models.Donation {
	t.Helper()
	donation := &models.Donation{
		Amount:      decimal.NewFromInt(seed.amount),
		Status:      models.DonationPending,
		IsAnonymous: seed.isAnonymous,
		GoalID:      seed.goalID,
		CreatedAt:   time.Now(),
	}
	if seed.donorName != "" {
		name := seed.donorName
		donation.DonorName = &name
	}
	require.NoError(t, db.Create(donation).Error)
	require.NoError(t, db.Create(&models.Transaction{
		DonationID: donation.ID,
		Provider:   models.ProviderBankTransfer,
		Amount:     donation.Amount,
		Status:     models.DonationPending,
		Metadata:   seed.metadata,
	}).Error)
	return donation
}

func seedGoal(t *testing.T, db *gorm.DB, title string, target int64) *models.Goal {
	t.Helper()
	goal := &models.Goal{Title: title, TargetAmount: decimal.NewFromInt(target), Status: models.GoalActive}
	require.NoError(t, db.Create(goal).Error)
	return goal
}

type recordingPublisher struct {
	events []queue.ActivityEvent
	err    error
}

func (p *recordingPublisher) PublishActivity(event queue.ActivityEvent) error {
	p.events = append(p.events, event)
	return p.err
}

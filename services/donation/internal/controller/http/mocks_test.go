package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"lucky-money/pkg/logger"
	"lucky-money/pkg/middleware"
	"lucky-money/pkg/vietqr"
	"lucky-money/services/donation/internal/entity"
	"lucky-money/services/donation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type MockDonationUseCase struct {
	mock.Mock
}

func (m *MockDonationUseCase) Submit(ctx context.Context, input usecase.SubmitDonationInput) (*usecase.SubmitResult, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SubmitResult), args.Error(1)
}

func (m *MockDonationUseCase) GetDonation(ctx context.Context, donationID string) (*entity.Donation, error) {
	args := m.Called(donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Donation), args.Error(1)
}

func (m *MockDonationUseCase) GetPaymentInfo(ctx context.Context, donationID string) (*vietqr.PaymentInfo, error) {
	args := m.Called(donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vietqr.PaymentInfo), args.Error(1)
}

type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListTypes(ctx context.Context) ([]*entity.DonationType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.DonationType), args.Error(1)
}

type MockGoalUseCase struct {
	mock.Mock
}

func (m *MockGoalUseCase) ListActiveGoals(ctx context.Context) ([]*entity.GoalProgress, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.GoalProgress), args.Error(1)
}

func (m *MockGoalUseCase) CreateGoal(ctx context.Context, input usecase.CreateGoalInput) (*entity.Goal, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Goal), args.Error(1)
}

type MockActivityUseCase struct {
	mock.Mock
}

func (m *MockActivityUseCase) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Activity), args.Error(1)
}

type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) ListDonations(ctx context.Context, filter entity.DonationFilter) (*entity.DonationPage, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DonationPage), args.Error(1)
}

func (m *MockAdminUseCase) ApproveDonation(ctx context.Context, donationID, adminID string) (*entity.Donation, error) {
	args := m.Called(donationID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Donation), args.Error(1)
}

func (m *MockAdminUseCase) RejectDonation(ctx context.Context, donationID, adminID, reason string) (*entity.Donation, error) {
	args := m.Called(donationID, adminID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Donation), args.Error(1)
}

func (m *MockAdminUseCase) MatchTransfer(ctx context.Context, memo string) (*usecase.TransferMatch, error) {
	args := m.Called(memo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TransferMatch), args.Error(1)
}

var (
	_ usecase.DonationUseCase = (*MockDonationUseCase)(nil)
	_ usecase.CatalogUseCase  = (*MockCatalogUseCase)(nil)
	_ usecase.GoalUseCase     = (*MockGoalUseCase)(nil)
	_ usecase.ActivityUseCase = (*MockActivityUseCase)(nil)
	_ usecase.AdminUseCase    = (*MockAdminUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, zerolog.Disabled)
}

func jsonBody(v interface{}) *bytes.Buffer {
	b, _ := json.Marshal(v)
	return bytes.NewBuffer(b)
}

// asUser stands in for the auth middleware.
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

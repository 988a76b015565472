package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lucky-money/services/donation/internal/entity"
	"lucky-money/services/donation/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListGoals(t *testing.T) {
	mockGoals := new(MockGoalUseCase)
	handler := NewGoalHandler(mockGoals, new(MockActivityUseCase), testLogger())

	router := setupTestRouter()
	router.GET("/goals", handler.ListGoals)

	days := 3
	mockGoals.On("ListActiveGoals").Return([]*entity.GoalProgress{{
		Goal:            &entity.Goal{ID: "g-1", Title: "Food", TargetAmount: decimal.NewFromInt(1000000)},
		CurrentAmount:   decimal.NewFromInt(250000),
		ProgressPercent: 25,
		DaysRemaining:   &days,
	}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/goals", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Food"`)
	assert.Contains(t, w.Body.String(), `"progress_percent":25`)
	assert.Contains(t, w.Body.String(), `"days_remaining":3`)
}

func TestListActivities_Limit(t *testing.T) {
	mockActivities := new(MockActivityUseCase)
	handler := NewGoalHandler(new(MockGoalUseCase), mockActivities, testLogger())

	router := setupTestRouter()
	router.GET("/activities", handler.ListActivities)

	mockActivities.On("ListRecent", 5).Return([]*entity.Activity{{ID: "a-1", Content: "Lan donated 50.000₫"}}, nil)
	mockActivities.On("ListRecent", usecase.DefaultActivityLimit).Return([]*entity.Activity{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/activities?limit=5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lan donated")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/activities", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateGoal(t *testing.T) {
	mockGoals := new(MockGoalUseCase)
	handler := NewGoalHandler(mockGoals, new(MockActivityUseCase), testLogger())

	router := setupTestRouter()
	router.POST("/admin/goals", handler.CreateGoal)

	mockGoals.On("CreateGoal", mock.MatchedBy(func(in usecase.CreateGoalInput) bool {
		return in.Title == "Rent" && in.TargetAmount.Equal(decimal.NewFromInt(3000000)) &&
			len(in.Milestones) == 1 && in.Milestones[0].Amount.Equal(decimal.NewFromInt(1000000))
	})).Return(&entity.Goal{ID: "g-2", Title: "Rent", Status: entity.GoalActive}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/goals", jsonBody(map[string]interface{}{
		"title":         "Rent",
		"target_amount": 3000000,
		"milestones":    []map[string]interface{}{{"amount": 1000000, "description": "first third"}},
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"g-2"`)
	mockGoals.AssertExpectations(t)
}

func TestCreateGoal_WrongAmountTypeNamesField(t *testing.T) {
	mockGoals := new(MockGoalUseCase)
	handler := NewGoalHandler(mockGoals, new(MockActivityUseCase), testLogger())

	router := setupTestRouter()
	router.POST("/admin/goals", handler.CreateGoal)

	req := httptest.NewRequest(http.MethodPost, "/admin/goals", jsonBody(map[string]interface{}{
		"title":         "Rent",
		"target_amount": "a lot",
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"target_amount"`)
	assert.Contains(t, w.Body.String(), `"message":"must be a number"`)
	mockGoals.AssertNotCalled(t, "CreateGoal", mock.Anything)
}

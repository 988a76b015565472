package http

import (
	"net/http"
	"time"

	"lucky-money/pkg/logger"
	"lucky-money/services/donation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	goalUseCase     usecase.GoalUseCase
	activityUseCase usecase.ActivityUseCase
	logger          *logger.Logger
}

func NewGoalHandler(goalUseCase usecase.GoalUseCase, activityUseCase usecase.ActivityUseCase, logger *logger.Logger) *GoalHandler {
	return &GoalHandler{
		goalUseCase:     goalUseCase,
		activityUseCase: activityUseCase,
		logger:          logger,
	}
}

type MilestoneRequest struct {
	Amount      jsonAmount `json:"amount" swaggertype:"number"`
	Description string     `json:"description"`
}

type CreateGoalRequest struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	TargetAmount jsonAmount         `json:"target_amount" swaggertype:"number"`
	Deadline     *time.Time         `json:"deadline"`
	DisplayOrder int                `json:"display_order"`
	Milestones   []MilestoneRequest `json:"milestones"`
}

// ListGoals godoc
// @Summary      List active goals
// @Description  Active goals with progress derived from completed donations, nearest deadline first
// @Tags         goals
// @Produce      json
// @Success      200  {array}   entity.GoalProgress
// @Failure      500  {object}  map[string]string
// @Router       /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.goalUseCase.ListActiveGoals(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch goals")
		return
	}

	c.JSON(http.StatusOK, goals)
}

// ListActivities godoc
// @Summary      Recent activity
// @Description  Most recent feed entries, newest first
// @Tags         activities
// @Produce      json
// @Param        limit  query     int  false  "Number of entries (default 10, max 50)"
// @Success      200  {array}   entity.Activity
// @Failure      500  {object}  map[string]string
// @Router       /activities [get]
func (h *GoalHandler) ListActivities(c *gin.Context) {
	limit := queryInt(c, "limit", usecase.DefaultActivityLimit)

	activities, err := h.activityUseCase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, activities)
}

// CreateGoal godoc
// @Summary      Create a goal
// @Description  Create an ACTIVE goal with milestones and announce it in the activity feed
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateGoalRequest true "Goal"
// @Success      201  {object}  entity.Goal
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := usecase.CreateGoalInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount.Decimal,
		Deadline:     req.Deadline,
		DisplayOrder: req.DisplayOrder,
	}
	for _, m := range req.Milestones {
		input.Milestones = append(input.Milestones, usecase.MilestoneInput{
			Amount:      m.Amount.Decimal,
			Description: m.Description,
		})
	}

	goal, err := h.goalUseCase.CreateGoal(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, goal)
}

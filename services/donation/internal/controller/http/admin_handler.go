package http

import (
	"net/http"
	"strconv"
	"strings"

	"lucky-money/pkg/logger"
	"lucky-money/pkg/middleware"
	"lucky-money/services/donation/internal/entity"
	"lucky-money/services/donation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

type RejectDonationRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type MatchTransferRequest struct {
	Memo string `json:"memo" binding:"required"`
}

// ListDonations godoc
// @Summary      List donations
// @Description  Page of donations with their type and transaction, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "PENDING, COMPLETED or FAILED"
// @Param        page    query     int     false  "Page, starting at 1"
// @Param        limit   query     int     false  "Page size (default 20)"
// @Success      200  {object}  entity.DonationPage
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/donations [get]
func (h *AdminHandler) ListDonations(c *gin.Context) {
	filter := entity.DonationFilter{
		Status: entity.DonationStatus(strings.ToUpper(c.Query("status"))),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", usecase.DefaultAdminPageSize),
	}

	page, err := h.adminUseCase.ListDonations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch donations")
		return
	}

	c.JSON(http.StatusOK, page)
}

// ApproveDonation godoc
// @Summary      Approve a donation
// @Description  Confirm the bank transfer of a PENDING donation
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Donation ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/donations/{id}/approve [post]
func (h *AdminHandler) ApproveDonation(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)

	donation, err := h.adminUseCase.ApproveDonation(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to approve donation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "donation": donation})
}

// RejectDonation godoc
// @Summary      Reject a donation
// @Description  Mark a PENDING donation as FAILED when no transfer arrived
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true   "Donation ID"
// @Param        request  body      RejectDonationRequest  false  "Reason"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/donations/{id}/reject [post]
func (h *AdminHandler) RejectDonation(c *gin.Context) {
	var req RejectDonationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}
	adminID := c.GetString(middleware.ContextUserID)

	donation, err := h.adminUseCase.RejectDonation(c.Request.Context(), c.Param("id"), adminID, req.Reason)
	if err != nil {
		respondError(c, h.logger, err, "Failed to reject donation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "donation": donation})
}

// MatchTransfer godoc
// @Summary      Match a transfer memo
// @Description  Find PENDING donations referenced by a bank statement description
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body MatchTransferRequest true "Statement line"
// @Success      200  {object}  usecase.TransferMatch
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/transfers/match [post]
func (h *AdminHandler) MatchTransfer(c *gin.Context) {
	var req MatchTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "memo is required"})
		return
	}

	match, err := h.adminUseCase.MatchTransfer(c.Request.Context(), req.Memo)
	if err != nil {
		respondError(c, h.logger, err, "Failed to match transfer")
		return
	}

	c.JSON(http.StatusOK, match)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

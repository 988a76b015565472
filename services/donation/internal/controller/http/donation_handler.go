package http

import (
	"net/http"

	"lucky-money/pkg/logger"
	"lucky-money/pkg/middleware"
	"lucky-money/services/donation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	donationUseCase usecase.DonationUseCase
	catalogUseCase  usecase.CatalogUseCase
	logger          *logger.Logger
}

func NewDonationHandler(donationUseCase usecase.DonationUseCase, catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *DonationHandler {
	return &DonationHandler{
		donationUseCase: donationUseCase,
		catalogUseCase:  catalogUseCase,
		logger:          logger,
	}
}

type CreateDonationRequest struct {
	Amount      jsonAmount      `json:"amount" swaggertype:"number"`
	Message     string          `json:"message"`
	IsAnonymous bool            `json:"is_anonymous"`
	DonorName   string          `json:"donor_name"`
	DonorEmail  string          `json:"donor_email"`
	DonorPhone  string          `json:"donor_phone"`
	TypeID      string          `json:"type_id"`
	GoalID      string          `json:"goal_id"`
}

type CreateDonationResponse struct {
	DonationID  string `json:"donation_id"`
	Status      string `json:"status"`
	RedirectURL string `json:"redirect_url"`
}

// ListTypes godoc
// @Summary      List donation types
// @Description  Active donation types ordered by suggested amount
// @Tags         donations
// @Produce      json
// @Success      200  {array}   entity.DonationType
// @Failure      500  {object}  map[string]string
// @Router       /donations/types [get]
func (h *DonationHandler) ListTypes(c *gin.Context) {
	types, err := h.catalogUseCase.ListTypes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch donation types")
		return
	}

	c.JSON(http.StatusOK, types)
}

// CreateDonation godoc
// @Summary      Submit a donation
// @Description  Create a PENDING donation and its bank transfer transaction
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        request body CreateDonationRequest true "Donation"
// @Success      201  {object}  CreateDonationResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      429  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /donations [post]
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.donationUseCase.Submit(c.Request.Context(), usecase.SubmitDonationInput{
		Amount:      req.Amount.Decimal,
		Message:     req.Message,
		IsAnonymous: req.IsAnonymous,
		DonorName:   req.DonorName,
		DonorEmail:  req.DonorEmail,
		DonorPhone:  req.DonorPhone,
		TypeID:      req.TypeID,
		GoalID:      req.GoalID,
		UserID:      c.GetString(middleware.ContextUserID),
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to create donation")
		return
	}

	c.JSON(http.StatusCreated, CreateDonationResponse{
		DonationID:  result.Donation.ID,
		Status:      string(result.Donation.Status),
		RedirectURL: result.RedirectURL,
	})
}

// GetDonation godoc
// @Summary      Get a donation
// @Description  Donation summary shown on the payment page
// @Tags         donations
// @Produce      json
// @Param        id   path      string  true  "Donation ID"
// @Success      200  {object}  entity.Donation
// @Failure      404  {object}  map[string]string
// @Router       /donations/{id} [get]
func (h *DonationHandler) GetDonation(c *gin.Context) {
	donation, err := h.donationUseCase.GetDonation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch donation")
		return
	}

	// Contact details stay private on this public endpoint.
	donation.DonorEmail = nil
	donation.DonorPhone = nil
	if donation.IsAnonymous {
		donation.DonorName = nil
	}
	donation.UserID = nil
	donation.Transaction = nil

	c.JSON(http.StatusOK, donation)
}

// GetPaymentQR godoc
// @Summary      Get transfer QR info
// @Description  VietQR image URL and the bank fields to copy for a donation
// @Tags         payment
// @Produce      json
// @Param        donationId  query     string  true  "Donation ID"
// @Success      200  {object}  vietqr.PaymentInfo
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /payment/qr [get]
func (h *DonationHandler) GetPaymentQR(c *gin.Context) {
	donationID := c.Query("donationId")
	if donationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "donationId is required"})
		return
	}

	info, err := h.donationUseCase.GetPaymentInfo(c.Request.Context(), donationID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to build payment info")
		return
	}

	c.JSON(http.StatusOK, info)
}

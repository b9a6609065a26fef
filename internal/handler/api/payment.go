package api

import (
	"errors"
	"net/http"

	reqdto "courtdesk/internal/handler/dto/request"
	resdto "courtdesk/internal/handler/dto/response"
	"courtdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Create payment
// @Description Charge a tokenized card for a pending reservation
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.paymentUseCase.Create(c.Request.Context(), usecase.CreatePaymentInput{
		ReservationID: req.ReservationID,
		CardToken:     req.CardToken,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, usecase.ErrReservationNotPayable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is not awaiting payment",
			})
		case errors.Is(err, usecase.ErrDuplicateCharge):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Charge already recorded",
			})
		case errors.Is(err, usecase.ErrChargeFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Charge creation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentRM(rm))
}

// @Summary Payment provider webhook
// @Description Receive a charge event; the event is verified against the provider API before acting on it
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.WebhookRequest true "Provider event"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req reqdto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.paymentUseCase.HandleProviderEvent(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEventVerifyFailed):
			// The event could not be confirmed with the provider; do not act
			// on an unverified payload.
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Event verification failed",
			})
		case errors.Is(err, usecase.ErrPaymentNotFound):
			// Unknown charge: acknowledge so the provider stops retrying.
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

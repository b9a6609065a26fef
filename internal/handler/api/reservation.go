package api

import (
	"errors"
	"net/http"

	"courtdesk/internal/domain/account"
	"courtdesk/internal/domain/reservation"
	reqdto "courtdesk/internal/handler/dto/request"
	resdto "courtdesk/internal/handler/dto/response"
	"courtdesk/internal/handler/middleware"
	"courtdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Book a facility slot, authenticated or as a guest
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var accountID *uuid.UUID
	if id, ok := middleware.GetAccountID(c); ok {
		accountID = &id
	}

	if reservation.Channel(req.Channel) == reservation.ChannelAdmin {
		role, ok := middleware.GetAccountRole(c)
		if !ok || (role != account.RoleStaff && role != account.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin channel requires staff privileges",
			})
			return
		}
	}

	result, err := h.reservationUseCase.Create(c.Request.Context(), req.ToInput(accountID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Facility not found",
			})
		case errors.Is(err, usecase.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is already booked",
			})
		case errors.Is(err, usecase.ErrDuplicateReservation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot already requested by this account",
			})
		case errors.Is(err, usecase.ErrDailyLimitReached):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Daily reservation limit reached",
			})
		case errors.Is(err, usecase.ErrInvalidSlot),
			errors.Is(err, usecase.ErrInvalidGuestEmail),
			errors.Is(err, usecase.ErrInvalidGuestPhone),
			errors.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateReservationResult(result))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	rm, err := h.reservationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

// @Summary Cancel reservation
// @Description Cancel an upcoming reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	rm, err := h.reservationUseCase.Cancel(c.Request.Context(), id, accountID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, usecase.ErrCancelForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation belongs to another account",
			})
		case errors.Is(err, reservation.ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation is already cancelled",
			})
		case errors.Is(err, reservation.ErrPastReservation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot cancel past reservations",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

// @Summary List upcoming reservations
// @Description List the account's upcoming reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations/upcoming [get]
func (h *ReservationHandler) ListUpcoming(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	rms, err := h.reservationUseCase.ListUpcoming(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListRM(rms))
}

// @Summary List reservation history
// @Description List the account's past and cancelled reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservations/history [get]
func (h *ReservationHandler) ListHistory(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ListHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pagination parameters",
		})
		return
	}

	rms, err := h.reservationUseCase.ListHistory(c.Request.Context(), accountID, req.Limit, req.Offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListRM(rms))
}

// @Summary List reservations for a facility day
// @Description Staff view of a facility's bookings on a given day
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param facility_id query string true "Facility ID"
// @Param day query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListByFacilityDay(c *gin.Context) {
	var req reqdto.ListByFacilityDayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "facility_id and day are required",
		})
		return
	}

	rms, err := h.reservationUseCase.ListByFacilityDay(c.Request.Context(), req.FacilityID, req.Day)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Facility not found",
			})
		case errors.Is(err, usecase.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid day format",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListRM(rms))
}

package api

import (
	"errors"
	"net/http"

	resdto "courtdesk/internal/handler/dto/response"
	"courtdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FacilityHandler struct {
	facilityUseCase usecase.FacilityUseCase
}

func NewFacilityHandler(facilityUseCase usecase.FacilityUseCase) *FacilityHandler {
	return &FacilityHandler{
		facilityUseCase: facilityUseCase,
	}
}

// @Summary List facilities
// @Description List all bookable facilities
// @Tags facilities
// @Produce json
// @Success 200 {array} resdto.FacilityResponse
// @Router /facilities [get]
func (h *FacilityHandler) ListFacilities(c *gin.Context) {
	rms, err := h.facilityUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFacilityRMs(rms))
}

// @Summary Get facility
// @Description Get facility by ID
// @Tags facilities
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} resdto.FacilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /facilities/{id} [get]
func (h *FacilityHandler) GetFacility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid facility ID format",
		})
		return
	}

	rm, err := h.facilityUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Facility not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFacilityRM(rm))
}

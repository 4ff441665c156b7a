package v1

import (
	"errors"
	"net/http"

	"go-rotech-website/internal/delivery/http/response"
	"go-rotech-website/internal/domain"
	"go-rotech-website/internal/usecase"
	"go-rotech-website/pkg/apperror"
	"go-rotech-website/pkg/validation"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUC domain.BookingUsecase
}

// NewBookingHandler registers the booking routes (public, no auth required)
func NewBookingHandler(public *gin.RouterGroup, bookingUC domain.BookingUsecase) {
	handler := &BookingHandler{
		bookingUC: bookingUC,
	}

	public.POST("/booking", handler.SubmitBooking)
}

// SubmitBooking godoc
// @Summary      Submit a consultation booking
// @Description  Validates the booking request and emails the operator notification plus the submitter confirmation. This is a public endpoint.
// @Tags         booking
// @Accept       json
// @Produce      json
// @Param        booking  body      domain.BookingRequest  true  "Booking Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      405      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /booking [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	if err := h.bookingUC.SubmitBooking(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.Error(apperror.BadRequest("Missing required fields"))
		case errors.Is(err, usecase.ErrMailerNotConfigured):
			c.Error(apperror.New(http.StatusServiceUnavailable, "Booking service temporarily unavailable", err))
		default:
			c.Error(apperror.New(http.StatusInternalServerError, "Failed to send email", err))
		}
		return
	}

	response.Success(c, http.StatusOK, "Consultation request submitted successfully", nil)
}

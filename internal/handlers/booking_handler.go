package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-agenda/internal/usecase/appointment"
)

type BookingHandler struct {
	get          *ucAppointment.GetBooking
	changeStatus *ucAppointment.ChangeBookingStatus
	cancel       *ucAppointment.CancelBooking
}

func NewBookingHandler(
	get *ucAppointment.GetBooking,
	changeStatus *ucAppointment.ChangeBookingStatus,
	cancel *ucAppointment.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		get:          get,
		changeStatus: changeStatus,
		cancel:       cancel,
	}
}

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_booking_id")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_booking_id")
	if !ok {
		return
	}

	var req ChangeBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.changeStatus.Execute(c.Request.Context(), ucAppointment.ChangeBookingStatusInput{
		UserID:    middleware.UserID(c),
		BookingID: id,
		Status:    req.Status,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

// Cancel releases every block of the booking.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_booking_id")
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

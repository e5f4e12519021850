package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateBooking
	validate     *ucAppointment.ValidateBooking
	changeStatus *ucAppointment.ChangeStatus
	listByDate   *ucAppointment.ListAppointmentsByDate
	listBetween  *ucAppointment.ListAppointmentsBetween
}

func NewAppointmentHandler(
	create *ucAppointment.CreateBooking,
	validate *ucAppointment.ValidateBooking,
	changeStatus *ucAppointment.ChangeStatus,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listBetween *ucAppointment.ListAppointmentsBetween,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		validate:     validate,
		changeStatus: changeStatus,
		listByDate:   listByDate,
		listBetween:  listBetween,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Blocks    int    `json:"blocks"`
	Notes     string `json:"notes"`

	ConfirmOutOfHours bool `json:"confirm_out_of_hours"`
}

type ValidateBookingRequest struct {
	Date             string  `json:"date" binding:"required"`
	StartTime        string  `json:"start_time" binding:"required"`
	Blocks           int     `json:"blocks"`
	ExcludeBookingID *string `json:"exclude_booking_id"`
}

type ChangeStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

// List answers ?date= with one day and ?from=&to= with a range.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if date := c.Query("date"); date != "" {
		rows, err := h.listByDate.Execute(ctx, date)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		httpresp.List(c, rows)
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		httperr.BadRequest(c, "missing_date", "date or from and to are required")
		return
	}

	rows, err := h.listBetween.Execute(ctx, from, to)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, rows)
}

// ======================================================
// VALIDATE (DRY RUN)
// ======================================================

func (h *AppointmentHandler) Validate(c *gin.Context) {
	var req ValidateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	in := ucAppointment.ValidateBookingInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		Blocks:    req.Blocks,
	}
	if req.ExcludeBookingID != nil && *req.ExcludeBookingID != "" {
		id, err := uuid.Parse(*req.ExcludeBookingID)
		if err != nil {
			httperr.BadRequest(c, "invalid_booking_id", "exclude_booking_id must be a UUID")
			return
		}
		in.ExcludeBookingID = &id
	}

	res, err := h.validate.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		UserID:            middleware.UserID(c),
		ClientID:          req.ClientID,
		Date:              req.Date,
		StartTime:         req.StartTime,
		Blocks:            req.Blocks,
		Notes:             req.Notes,
		ConfirmOutOfHours: req.ConfirmOutOfHours,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := uintParam(c, "id", "invalid_appointment_id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), ucAppointment.ChangeStatusInput{
		UserID:        middleware.UserID(c),
		AppointmentID: id,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

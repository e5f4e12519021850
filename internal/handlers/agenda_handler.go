package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-agenda/internal/usecase/appointment"
)

type AgendaHandler struct {
	agenda    *ucAppointment.GetAgenda
	dashboard *ucAppointment.Dashboard
}

func NewAgendaHandler(
	agenda *ucAppointment.GetAgenda,
	dashboard *ucAppointment.Dashboard,
) *AgendaHandler {
	return &AgendaHandler{agenda: agenda, dashboard: dashboard}
}

// Get serves the slot grid of ?date=, optionally narrowed with
// start_hour and end_hour and filtered by ?status=.
func (h *AgendaHandler) Get(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "date is required")
		return
	}

	startHour, ok := intQuery(c, "start_hour")
	if !ok {
		return
	}
	endHour, ok := intQuery(c, "end_hour")
	if !ok {
		return
	}

	out, err := h.agenda.Execute(c.Request.Context(), ucAppointment.GetAgendaInput{
		Date:      date,
		StartHour: startHour,
		EndHour:   endHour,
		Status:    c.Query("status"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AgendaHandler) Dashboard(c *gin.Context) {
	out, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

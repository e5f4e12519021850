package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	ucSettings "github.com/BruksfildServices01/salon-agenda/internal/usecase/settings"
)

type WorkingHoursHandler struct {
	get    *ucSettings.GetWorkHours
	update *ucSettings.UpdateWorkHours
}

func NewWorkingHoursHandler(
	get *ucSettings.GetWorkHours,
	update *ucSettings.UpdateWorkHours,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{get: get, update: update}
}

type WorkHoursRequest struct {
	WorkStart string `json:"work_start" binding:"required"`
	WorkEnd   string `json:"work_end" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	hours, err := h.get.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkHoursRequest
	if !bindJSON(c, &req) {
		return
	}

	hours, err := h.update.Execute(c.Request.Context(), middleware.UserID(c), req.WorkStart, req.WorkEnd)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, hours)
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	ucAuditLog "github.com/BruksfildServices01/salon-agenda/internal/usecase/auditlog"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	list *ucAuditLog.ListAuditLogs
}

func NewAuditLogsHandler(list *ucAuditLog.ListAuditLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

// List filters by action, entity, user_id and a from/to day range and
// pages with page and limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	in := ucAuditLog.ListInput{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Page:   page,
		Limit:  limit,
	}

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_user_id", "user_id must be a positive integer")
			return
		}
		uid := uint(id)
		in.UserID = &uid
	}

	out, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, out.Logs, out.Page, out.Limit, out.Total)
}

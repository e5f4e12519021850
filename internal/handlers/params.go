package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
)

// uintParam reads a positive numeric path parameter, answering 400 with
// code when it is malformed.
func uintParam(c *gin.Context, name, code string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, code, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func uuidParam(c *gin.Context, name, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, code, name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// intQuery returns nil when the query parameter is absent.
func intQuery(c *gin.Context, name string) (*int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, name+" must be an integer")
		return nil, false
	}
	return &n, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.WriteDetails(c, http.StatusBadRequest, "invalid_request", "request body is invalid", err.Error())
		return false
	}
	return true
}

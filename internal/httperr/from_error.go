package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Detailed is implemented by domain errors that carry response details
// beyond a code.
type Detailed interface {
	error
	ErrorCode() string
	ErrorDetails() any
}

var statusByCode = map[string]int{
	"slot_conflict":          http.StatusConflict,
	"out_of_hours":           http.StatusConflict,
	"duplicate_client_name":  http.StatusConflict,
	"registration_closed":    http.StatusConflict,
	"email_taken":            http.StatusConflict,
	"invalid_credentials":    http.StatusUnauthorized,
	"storage_not_configured": http.StatusServiceUnavailable,
}

var messageByCode = map[string]string{
	"required_field_missing": "name and phone are required",
	"duplicate_client_name":  "a client with this name already exists",
	"invalid_date":           "date must be YYYY-MM-DD",
	"invalid_time":           "time must be HH:MM on a 15 minute boundary",
	"invalid_blocks":         "blocks must be at least 1 and end before midnight",
	"invalid_status":         "status must be confirmed, pending or canceled",
	"invalid_work_hours":     "work hours must be HH:MM with start before end",
	"invalid_image":          "photo must be a JPEG, PNG or WebP image up to 5MB",
	"image_too_large":        "photo dimensions are too large",
	"invalid_email":          "email address is not valid",
	"weak_password":          "password must have at least 8 characters",
	"invalid_credentials":    "email or password is incorrect",
	"registration_closed":    "an account already exists",
	"storage_not_configured": "object storage is not configured",
}

// StatusFor maps a business code to its HTTP status. Codes ending in
// _not_found are 404 and unknown codes are client errors.
func StatusFor(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	if strings.HasSuffix(code, "_not_found") {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// FromError writes the response for err. Unexpected errors are attached
// to the context for the access log and answered with a generic 500.
func FromError(c *gin.Context, err error) {
	var d Detailed
	if errors.As(err, &d) {
		WriteDetails(c, StatusFor(d.ErrorCode()), d.ErrorCode(), d.Error(), d.ErrorDetails())
		return
	}

	if code, ok := BusinessCode(err); ok {
		msg := messageByCode[code]
		if msg == "" {
			msg = strings.ReplaceAll(code, "_", " ")
		}
		Write(c, StatusFor(code), code, msg)
		return
	}

	_ = c.Error(err)
	Internal(c, "internal_error", "unexpected error")
}

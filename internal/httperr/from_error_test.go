package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type conflictErr struct{ at string }

func (e *conflictErr) Error() string     { return "conflict at " + e.at }
func (e *conflictErr) ErrorCode() string { return "slot_conflict" }
func (e *conflictErr) ErrorDetails() any { return map[string]string{"time": e.at} }

func render(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, err)

	var body HTTPError
	if jerr := json.Unmarshal(w.Body.Bytes(), &body); jerr != nil {
		t.Fatalf("decode body: %v", jerr)
	}
	return w, body, c
}

func TestFromError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"detailed", fmt.Errorf("wrap: %w", &conflictErr{at: "09:15"}), http.StatusConflict, "slot_conflict"},
		{"not found", ErrBusiness("client_not_found"), http.StatusNotFound, "client_not_found"},
		{"duplicate", ErrBusiness("duplicate_client_name"), http.StatusConflict, "duplicate_client_name"},
		{"input", ErrBusiness("invalid_date"), http.StatusBadRequest, "invalid_date"},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body, _ := render(t, tc.err)
			if w.Code != tc.status || body.Code != tc.code {
				t.Fatalf("got %d %q, want %d %q", w.Code, body.Code, tc.status, tc.code)
			}
		})
	}
}

func TestFromError_DetailsAndInternalLogging(t *testing.T) {
	_, body, _ := render(t, &conflictErr{at: "10:00"})
	details, ok := body.Details.(map[string]any)
	if !ok || details["time"] != "10:00" {
		t.Fatalf("details = %#v", body.Details)
	}

	_, _, c := render(t, errors.New("db down"))
	if len(c.Errors) != 1 {
		t.Fatalf("context errors = %d, want 1", len(c.Errors))
	}
}

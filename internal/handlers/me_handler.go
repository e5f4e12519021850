package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	ucAuth "github.com/BruksfildServices01/salon-agenda/internal/usecase/auth"
)

type MeHandler struct {
	getUser *ucAuth.GetUser
}

func NewMeHandler(getUser *ucAuth.GetUser) *MeHandler {
	return &MeHandler{getUser: getUser}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		httperr.Unauthorized(c, "user_not_in_context", "no authenticated user")
		return
	}

	user, err := h.getUser.Execute(c.Request.Context(), *userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"user": user})
}

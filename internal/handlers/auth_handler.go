package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	ucAuth "github.com/BruksfildServices01/salon-agenda/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
}

func NewAuthHandler(register *ucAuth.Register, login *ucAuth.Login) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r RegisterRequest) input() ucAuth.RegisterInput {
	return ucAuth.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register bootstraps the owner account; it is closed once any user
// exists.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.register.Bootstrap(c.Request.Context(), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, session)
}

// CreateStaff is the owner-only way to add accounts after bootstrap.
func (h *AuthHandler) CreateStaff(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.register.CreateStaff(c.Request.Context(), middleware.UserID(c), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, user)
}

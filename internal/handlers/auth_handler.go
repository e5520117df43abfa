package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/httpresp"
	authuc "github.com/BruksfildServices01/order-desk/internal/usecase/auth"
)

type AuthHandler struct {
	login     *authuc.Login
	bootstrap *authuc.BootstrapAdmin
}

func NewAuthHandler(login *authuc.Login, bootstrap *authuc.BootstrapAdmin) *AuthHandler {
	return &AuthHandler{
		login:     login,
		bootstrap: bootstrap,
	}
}

// ======================================================
// LOGIN
// ======================================================

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), authuc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		CallerIP: c.ClientIP(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// BOOTSTRAP (MASTER KEY)
// ======================================================

type bootstrapRequest struct {
	MasterKey string `json:"master_key" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Bootstrap(c *gin.Context) {
	var req bootstrapRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.bootstrap.Execute(c.Request.Context(), authuc.BootstrapAdminInput{
		MasterKey: req.MasterKey,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, acc)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/httpresp"
	"github.com/BruksfildServices01/order-desk/internal/middleware"
	accountuc "github.com/BruksfildServices01/order-desk/internal/usecase/account"
)

// UserHandler is the admin surface over operator accounts.
type UserHandler struct {
	provision *accountuc.ProvisionAccount
	update    *accountuc.UpdateAccount
	list      *accountuc.ListAccounts
}

func NewUserHandler(
	provision *accountuc.ProvisionAccount,
	update *accountuc.UpdateAccount,
	list *accountuc.ListAccounts,
) *UserHandler {
	return &UserHandler{
		provision: provision,
		update:    update,
		list:      list,
	}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

func (h *UserHandler) List(c *gin.Context) {
	accounts, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, accounts)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.provision.Execute(c.Request.Context(), accountuc.ProvisionAccountInput{
		ActorID:  audit.Ptr(middleware.UserID(c)),
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, acc)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.update.Execute(c.Request.Context(), id, accountuc.UpdateAccountInput{
		ActorID:  middleware.UserID(c),
		Name:     req.Name,
		Role:     req.Role,
		Active:   req.Active,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, acc)
}

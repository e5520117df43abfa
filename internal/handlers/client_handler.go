package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/httpresp"
	"github.com/BruksfildServices01/order-desk/internal/middleware"
	clientuc "github.com/BruksfildServices01/order-desk/internal/usecase/client"
)

type ClientHandler struct {
	create *clientuc.CreateClient
	get    *clientuc.GetClient
	list   *clientuc.ListClients
	update *clientuc.UpdateClient
	delete *clientuc.DeleteClient
}

func NewClientHandler(
	create *clientuc.CreateClient,
	get *clientuc.GetClient,
	list *clientuc.ListClients,
	update *clientuc.UpdateClient,
	del *clientuc.DeleteClient,
) *ClientHandler {
	return &ClientHandler{
		create: create,
		get:    get,
		list:   list,
		update: update,
		delete: del,
	}
}

// ======================================================
// LIST CLIENTS
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	client, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

type createClientRequest struct {
	Name  string  `json:"name" binding:"required,min=3,max=255"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), clientuc.CreateClientInput{
		UserID: middleware.UserID(c),
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, client)
}

type updateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3,max=255"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), id, clientuc.UpdateClientInput{
		UserID: middleware.UserID(c),
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

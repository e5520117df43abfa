package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/httpresp"
	"github.com/BruksfildServices01/order-desk/internal/middleware"
	orderuc "github.com/BruksfildServices01/order-desk/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	create    *orderuc.CreateOrder
	get       *orderuc.GetOrder
	list      *orderuc.ListOrders
	update    *orderuc.UpdateOrder
	setStatus *orderuc.SetOrderStatus
	delete    *orderuc.DeleteOrder
}

func NewOrderHandler(
	create *orderuc.CreateOrder,
	get *orderuc.GetOrder,
	list *orderuc.ListOrders,
	update *orderuc.UpdateOrder,
	setStatus *orderuc.SetOrderStatus,
	del *orderuc.DeleteOrder,
) *OrderHandler {
	return &OrderHandler{
		create:    create,
		get:       get,
		list:      list,
		update:    update,
		setStatus: setStatus,
		delete:    del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type createOrderRequest struct {
	ClientName   string  `json:"client_name" binding:"required"`
	ContactPhone *string `json:"contact_phone"`

	ServiceKind string           `json:"service_kind"`
	Description string           `json:"description" binding:"required"`
	Quantity    *int             `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Priority    string           `json:"priority"`

	OrderDate     *string `json:"order_date"`
	PromisedDate  *string `json:"promised_date"`
	DeliveredDate *string `json:"delivered_date"`

	Notes string `json:"notes"`
}

type updateOrderRequest struct {
	ClientName   *string `json:"client_name"`
	ContactPhone *string `json:"contact_phone"`

	ServiceKind *string          `json:"service_kind"`
	Description *string          `json:"description"`
	Quantity    *int             `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Priority    *string          `json:"priority"`
	Status      *string          `json:"status"`

	OrderDate     *string `json:"order_date"`
	PromisedDate  *string `json:"promised_date"`
	DeliveredDate *string `json:"delivered_date"`

	Notes *string `json:"notes"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	in := orderuc.ListOrdersInput{
		Status:      c.Query("status"),
		ServiceKind: c.Query("service_kind"),
		Priority:    c.Query("priority"),
	}
	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.ErrValidation("invalid_request", httperr.FieldError{
				Field:   "client_id",
				Message: "must be a positive integer",
			}))
			return
		}
		in.ClientID = uint(id)
	}

	orders, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, order)
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	orderDate, err := parseDate("order_date", req.OrderDate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	promised, err := parseDate("promised_date", req.PromisedDate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	delivered, err := parseDate("delivered_date", req.DeliveredDate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	order, err := h.create.Execute(c.Request.Context(), orderuc.CreateOrderInput{
		UserID:        middleware.UserID(c),
		ClientName:    req.ClientName,
		ContactPhone:  req.ContactPhone,
		ServiceKind:   req.ServiceKind,
		Description:   req.Description,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		Priority:      req.Priority,
		OrderDate:     orderDate,
		PromisedDate:  promised,
		DeliveredDate: delivered,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, order)
}

// ======================================================
// UPDATE
// ======================================================

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	in := orderuc.UpdateOrderInput{
		UserID:       middleware.UserID(c),
		ClientName:   req.ClientName,
		ContactPhone: req.ContactPhone,
		ServiceKind:  req.ServiceKind,
		Description:  req.Description,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Priority:     req.Priority,
		Status:       req.Status,
		Notes:        req.Notes,
	}

	var err error
	if in.OrderDate, err = parseDate("order_date", req.OrderDate); err != nil {
		httperr.Respond(c, err)
		return
	}
	if in.PromisedDate, in.ClearPromisedDate, err = parseDateChange("promised_date", req.PromisedDate); err != nil {
		httperr.Respond(c, err)
		return
	}
	if in.DeliveredDate, in.ClearDeliveredDate, err = parseDateChange("delivered_date", req.DeliveredDate); err != nil {
		httperr.Respond(c, err)
		return
	}

	order, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, order)
}

func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.setStatus.Execute(c.Request.Context(), middleware.UserID(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, order)
}

// ======================================================
// DELETE
// ======================================================

func (h *OrderHandler) Delete(c *gin.Context) {
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

package handlers

import (
	"net/http"

	"VidaClinic/domain"
	"VidaClinic/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *services.OrderService
}

func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type createOrderRequest struct {
	PatientID string         `json:"patient_id"`
	DoctorID  string         `json:"doctor_id"`
	Items     []orderItemDTO `json:"items"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patientID, err := domain.NewIdentification(req.PatientID)
	if err != nil {
		respondError(c, err)
		return
	}
	doctorID, err := domain.NewIdentification(req.DoctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := orderItemsToDomain(req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := h.service.Create(c.Request.Context(), patientID, doctorID, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {
	number, err := domain.NewOrderNumber(c.Param("order_number"))
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := h.service.GetByNumber(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) GetOrdersByPatient(c *gin.Context) {
	patientID, err := domain.NewIdentification(c.Param("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	orders, err := h.service.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

type addItemsRequest struct {
	Items []orderItemDTO `json:"items"`
}

func (h *OrderHandler) AddItems(c *gin.Context) {
	number, err := domain.NewOrderNumber(c.Param("order_number"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req addItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := orderItemsToDomain(req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := h.service.AddItems(c.Request.Context(), number, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

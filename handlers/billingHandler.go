package handlers

import (
	"net/http"

	"VidaClinic/domain"
	"VidaClinic/services"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// InvoiceOrder prices an order and stores the invoice snapshot.
func (h *BillingHandler) InvoiceOrder(c *gin.Context) {
	number, err := domain.NewOrderNumber(c.Param("order_number"))
	if err != nil {
		respondError(c, err)
		return
	}
	invoice, err := h.service.InvoiceOrder(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toInvoiceResponse(invoice))
}

func (h *BillingHandler) GetInvoiceByID(c *gin.Context) {
	invoice, err := h.service.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInvoiceResponse(invoice))
}

func (h *BillingHandler) GetInvoicesByPatient(c *gin.Context) {
	patientID, err := domain.NewIdentification(c.Param("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	invoices, err := h.service.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInvoiceResponses(invoices))
}

package handlers

import (
	"net/http"
	"strconv"

	"VidaClinic/domain"
	"VidaClinic/models"
	"VidaClinic/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) GetItemByID(c *gin.Context) {
	id, err := parseItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) GetAllItems(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	id, err := parseItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.AdjustQuantity(c.Request.Context(), id, req.Delta); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity adjusted"})
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := parseItemID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseItemID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		return 0, domain.NewValidationError("item id", "must be numeric")
	}
	return uint(id), nil
}

package handlers

import (
	"net/http"

	"VidaClinic/domain"
	"VidaClinic/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := req.toDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	stored, err := h.service.Create(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(stored))
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := domain.NewIdentification(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponses(users))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := domain.NewIdentification(c.Param("user_id"))
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

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword sets a new password after verifying the current one.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, err := domain.NewIdentification(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// GetCapabilities exposes the authorization predicates for an acting user.
func (h *UserHandler) GetCapabilities(c *gin.Context) {
	id, err := domain.NewIdentification(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ctx := c.Request.Context()
	canView, err := h.service.CanViewPatientInfo(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	canManage, err := h.service.CanManageUsers(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	canRegister, err := h.service.CanRegisterPatients(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"can_view_patient_info": canView,
		"can_manage_users":      canManage,
		"can_register_patients": canRegister,
	})
}

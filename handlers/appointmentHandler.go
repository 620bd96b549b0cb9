package handlers

import (
	"net/http"
	"strconv"
	"time"

	"VidaClinic/domain"
	"VidaClinic/services"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type scheduleRequest struct {
	DoctorID string `json:"doctor_id"`
	DateTime string `json:"date_time"`
}

func (h *AppointmentHandler) ScheduleAppointment(c *gin.Context) {
	patientID, err := domain.NewIdentification(c.Param("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doctorID, err := domain.NewIdentification(req.DoctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	at, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		respondError(c, domain.NewValidationError("appointment date", "must be RFC 3339"))
		return
	}
	appointment, err := h.service.Schedule(c.Request.Context(), patientID, doctorID, at)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (h *AppointmentHandler) GetAppointmentsByPatient(c *gin.Context) {
	patientID, err := domain.NewIdentification(c.Param("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	appointments, err := h.service.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("appointment_id"), 10, 32)
	if err != nil {
		respondError(c, domain.NewValidationError("appointment id", "must be numeric"))
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated"})
}

package handlers

import (
	"net/http"

	"VidaClinic/domain"
	"VidaClinic/services"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient, err := req.toDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	stored, err := h.service.Register(c.Request.Context(), patient)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPatientResponse(stored))
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, err := domain.NewIdentification(c.Param("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPatientResponse(patient))
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPatientResponses(patients))
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := domain.NewIdentification(c.Param("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req patientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update, err := req.toDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	patient, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPatientResponse(patient))
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := domain.NewIdentification(c.Param("patient_id"))
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

package handlers

import (
	"net/http"
	"time"

	"VidaClinic/domain"
	"VidaClinic/services"

	"github.com/gin-gonic/gin"
)

type MedicalRecordHandler struct {
	service *services.MedicalRecordService
}

func NewMedicalRecordHandler(service *services.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

type vitalSignsDTO struct {
	TemperatureCelsius float64 `json:"temperature_celsius"`
	PulseBPM           int     `json:"pulse_bpm"`
	BloodPressure      string  `json:"blood_pressure"`
	RespiratoryRate    int     `json:"respiratory_rate"`
}

type recordEntryRequest struct {
	Date         string         `json:"date"`
	Reason       string         `json:"reason"`
	Symptoms     string         `json:"symptoms"`
	Diagnosis    string         `json:"diagnosis"`
	Vitals       *vitalSignsDTO `json:"vitals"`
	OrderNumbers []string       `json:"order_numbers"`
}

func (h *MedicalRecordHandler) AddEntry(c *gin.Context) {
	patientID, err := domain.NewIdentification(c.Param("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req recordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondError(c, domain.NewValidationError("entry date", "must be YYYY-MM-DD"))
		return
	}

	entry := domain.RecordEntry{
		Reason:       req.Reason,
		Symptoms:     req.Symptoms,
		Diagnosis:    req.Diagnosis,
		OrderNumbers: req.OrderNumbers,
	}
	if req.Vitals != nil {
		entry.Vitals = &domain.VitalSigns{
			TemperatureCelsius: req.Vitals.TemperatureCelsius,
			PulseBPM:           req.Vitals.PulseBPM,
			BloodPressure:      req.Vitals.BloodPressure,
			RespiratoryRate:    req.Vitals.RespiratoryRate,
		}
	}

	if err := h.service.AddEntry(c.Request.Context(), patientID, date, entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Record entry added"})
}

func (h *MedicalRecordHandler) GetHistory(c *gin.Context) {
	patientID, err := domain.NewIdentification(c.Param("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	record, err := h.service.GetHistory(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

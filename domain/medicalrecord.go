package domain

import "time"

// EntryDateLayout keys clinical-history entries by calendar day.
const EntryDateLayout = "2006-01-02"

type VitalSigns struct {
	TemperatureCelsius float64
	PulseBPM           int
	BloodPressure      string
	RespiratoryRate    int
}

// RecordEntry is one dated clinical-history entry.
type RecordEntry struct {
	Reason       string
	Symptoms     string
	Diagnosis    string
	Vitals       *VitalSigns
	OrderNumbers []string
}

// MedicalRecord holds the date-indexed clinical history of one patient.
// Entries are append-only; nothing is deleted in normal operation.
type MedicalRecord struct {
	PatientID Identification
	Entries   map[string]RecordEntry
}

func NewMedicalRecord(patientID Identification) MedicalRecord {
	return MedicalRecord{
		PatientID: patientID,
		Entries:   make(map[string]RecordEntry),
	}
}

// AddEntry appends an entry for the given date. A second entry for the
// same date is a duplicate, not an overwrite.
func (r *MedicalRecord) AddEntry(date time.Time, entry RecordEntry) error {
	if entry.Reason == "" {
		return NewValidationError("record entry", "reason cannot be blank")
	}
	key := date.Format(EntryDateLayout)
	if r.Entries == nil {
		r.Entries = make(map[string]RecordEntry)
	}
	if _, exists := r.Entries[key]; exists {
		return NewDuplicateEntityError("record entry", key)
	}
	r.Entries[key] = entry
	return nil
}

// EntryAt returns the entry for a calendar day, if present.
func (r MedicalRecord) EntryAt(date time.Time) (RecordEntry, bool) {
	entry, ok := r.Entries[date.Format(EntryDateLayout)]
	return entry, ok
}

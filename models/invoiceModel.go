package models

import (
	"time"

	"VidaClinic/domain"
)

// InvoiceRow stores the derived billing snapshot. It is written once and
// never updated; regeneration replaces the row.
type InvoiceRow struct {
	ID                  string           `gorm:"primaryKey;column:id" json:"id"`
	PatientID           string           `gorm:"column:patient_id;not null;index" json:"patient_id"`
	PatientName         string           `gorm:"column:patient_name;not null" json:"patient_name"`
	PatientAge          int              `gorm:"column:patient_age;not null" json:"patient_age"`
	DoctorName          string           `gorm:"column:doctor_name;not null" json:"doctor_name"`
	InsurerName         string           `gorm:"column:insurer_name" json:"insurer_name"`
	PolicyNumber        string           `gorm:"column:policy_number" json:"policy_number"`
	PolicyRemainingDays int              `gorm:"column:policy_remaining_days" json:"policy_remaining_days"`
	PolicyEndDate       *time.Time       `gorm:"column:policy_end_date" json:"policy_end_date"`
	Copay               int64            `gorm:"column:copay;not null" json:"copay"`
	Subtotal            int64            `gorm:"column:subtotal;not null" json:"subtotal"`
	IssuedAt            time.Time        `gorm:"column:issued_at;not null" json:"issued_at"`
	Lines               []InvoiceLineRow `gorm:"foreignKey:InvoiceID;references:ID" json:"lines"`
}

func (InvoiceRow) TableName() string {
	return "invoice"
}

type InvoiceLineRow struct {
	ID          uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	InvoiceID   string `gorm:"column:invoice_id;not null;index" json:"invoice_id"`
	Description string `gorm:"column:description;not null" json:"description"`
	Cost        int64  `gorm:"column:cost;not null" json:"cost"`
}

func (InvoiceLineRow) TableName() string {
	return "invoice_line"
}

func ToInvoiceRow(inv domain.Invoice) InvoiceRow {
	row := InvoiceRow{
		ID:                  inv.ID,
		PatientID:           inv.PatientIdentification.Value(),
		PatientName:         inv.PatientName,
		PatientAge:          inv.PatientAge,
		DoctorName:          inv.DoctorName,
		InsurerName:         inv.InsurerName,
		PolicyNumber:        inv.PolicyNumber,
		PolicyRemainingDays: inv.PolicyRemainingDays,
		PolicyEndDate:       inv.PolicyEndDate,
		Copay:               inv.Copay,
		Subtotal:            inv.Subtotal,
		IssuedAt:            inv.IssuedAt,
	}
	for _, line := range inv.Lines {
		row.Lines = append(row.Lines, InvoiceLineRow{
			InvoiceID:   inv.ID,
			Description: line.Description,
			Cost:        line.Cost,
		})
	}
	return row
}

func FromInvoiceRow(row InvoiceRow) (domain.Invoice, error) {
	patientID, err := domain.NewIdentification(row.PatientID)
	if err != nil {
		return domain.Invoice{}, err
	}
	inv := domain.Invoice{
		ID:                    row.ID,
		PatientIdentification: patientID,
		PatientName:           row.PatientName,
		PatientAge:            row.PatientAge,
		DoctorName:            row.DoctorName,
		InsurerName:           row.InsurerName,
		PolicyNumber:          row.PolicyNumber,
		PolicyRemainingDays:   row.PolicyRemainingDays,
		PolicyEndDate:         row.PolicyEndDate,
		Copay:                 row.Copay,
		Subtotal:              row.Subtotal,
		IssuedAt:              row.IssuedAt,
	}
	for _, line := range row.Lines {
		inv.Lines = append(inv.Lines, domain.InvoiceLine{Description: line.Description, Cost: line.Cost})
	}
	return inv, nil
}

package domain

import "time"

// Copay rules: an insured patient pays the standard copay per invoice
// until the annual cap is reached, then nothing for the rest of the year.
// Amounts are whole currency units.
const (
	StandardCopay  int64 = 50_000
	AnnualCopayCap int64 = 1_000_000
)

type InvoiceLine struct {
	Description string
	Cost        int64
}

// Invoice is a derived, read-only snapshot. Regenerating one means
// rebuilding it from the patient, the order items and the year-to-date
// copay; it is never mutated in place.
type Invoice struct {
	ID                    string
	PatientName           string
	PatientAge            int
	PatientIdentification Identification
	DoctorName            string
	InsurerName           string
	PolicyNumber          string
	PolicyRemainingDays   int
	PolicyEndDate         *time.Time
	Lines                 []InvoiceLine
	Copay                 int64
	Subtotal              int64
	IssuedAt              time.Time
}

// CreateInvoice prices a set of order items for a patient. It is a pure
// function of its inputs; the invoice date is supplied by the caller, so
// the result is deterministic.
func CreateInvoice(
	id string,
	patient Patient,
	doctorName string,
	items []OrderItem,
	copayPaidThisYear int64,
	invoiceDate time.Time,
) (Invoice, error) {
	if len(items) == 0 {
		return Invoice{}, NewValidationError("invoice", "requires at least one order item")
	}
	if copayPaidThisYear < 0 {
		return Invoice{}, NewValidationError("invoice", "year-to-date copay cannot be negative")
	}

	lines := make([]InvoiceLine, 0, len(items))
	var subtotal int64
	for _, item := range items {
		description, err := DescribeOrderItem(item)
		if err != nil {
			return Invoice{}, err
		}
		lines = append(lines, InvoiceLine{Description: description, Cost: item.ItemCost()})
		subtotal += item.ItemCost()
	}

	invoice := Invoice{
		ID:                    id,
		PatientName:           patient.FullName,
		PatientAge:            patient.BirthDate.AgeAt(invoiceDate),
		PatientIdentification: patient.Identification,
		DoctorName:            doctorName,
		Lines:                 lines,
		Subtotal:              subtotal,
		IssuedAt:              invoiceDate,
	}

	policy := patient.InsurancePolicy
	if policy == nil || !policy.IsActiveAt(invoiceDate) {
		// Uninsured patients pay the full subtotal.
		invoice.Copay = subtotal
		return invoice, nil
	}

	invoice.InsurerName = policy.Company
	invoice.PolicyNumber = policy.PolicyNumber
	invoice.PolicyRemainingDays = policy.RemainingDays(invoiceDate)
	endDate := policy.EndDate
	invoice.PolicyEndDate = &endDate

	remaining := AnnualCopayCap - copayPaidThisYear
	if remaining <= 0 {
		invoice.Copay = 0
		return invoice, nil
	}
	copay := StandardCopay
	if remaining < copay {
		copay = remaining
	}
	invoice.Copay = copay
	return invoice, nil
}

package events

// Event names published by the domain services.
const (
	PatientRegistered = "patient.registered"
	PatientDeleted    = "patient.deleted"
	OrderCreated      = "order.created"
	InvoiceIssued     = "invoice.issued"
)

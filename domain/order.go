package domain

import (
	"fmt"
	"time"
)

// OrderStatus tracks the order lifecycle. An order never leaves Invoiced
// and is never deleted once invoiced.
type OrderStatus string

const (
	OrderCreated    OrderStatus = "CREATED"
	OrderItemsAdded OrderStatus = "ITEMS_ADDED"
	OrderInvoiced   OrderStatus = "INVOICED"
)

// OrderItem is a closed variant set: medication, procedure or diagnostic.
// The unexported marker keeps the set closed to this package.
type OrderItem interface {
	ItemCost() int64
	isOrderItem()
}

type MedicationItem struct {
	Name   string
	Dose   string
	Length string
	Cost   int64
}

func (m MedicationItem) ItemCost() int64 { return m.Cost }
func (MedicationItem) isOrderItem()      {}

type ProcedureItem struct {
	Name      string
	Times     int
	Frequency string
	Cost      int64
}

func (p ProcedureItem) ItemCost() int64 { return p.Cost }
func (ProcedureItem) isOrderItem()      {}

type DiagnosticItem struct {
	Name   string
	Reason string
	Cost   int64
}

func (d DiagnosticItem) ItemCost() int64 { return d.Cost }
func (DiagnosticItem) isOrderItem()      {}

// Order aggregates typed line items under an immutable order number.
// Items are append-only; nothing is removed once added.
type Order struct {
	Number    OrderNumber
	PatientID Identification
	DoctorID  Identification
	CreatedAt time.Time
	Status    OrderStatus
	Items     []OrderItem
}

func NewOrder(number OrderNumber, patientID, doctorID Identification, createdAt time.Time) Order {
	return Order{
		Number:    number,
		PatientID: patientID,
		DoctorID:  doctorID,
		CreatedAt: createdAt,
		Status:    OrderCreated,
	}
}

// AddItem appends a line item. Items may be added any number of times and
// in any order until the order is invoiced.
func (o *Order) AddItem(item OrderItem) error {
	if o.Status == OrderInvoiced {
		return NewValidationError("order", "cannot add items to an invoiced order")
	}
	if item.ItemCost() < 0 {
		return NewValidationError("order item", "cost cannot be negative")
	}
	o.Items = append(o.Items, item)
	o.Status = OrderItemsAdded
	return nil
}

// MarkInvoiced moves the order to its terminal billing state.
func (o *Order) MarkInvoiced() error {
	if len(o.Items) == 0 {
		return NewValidationError("order", "cannot invoice an order without items")
	}
	o.Status = OrderInvoiced
	return nil
}

// Subtotal is the sum of all line item costs.
func (o Order) Subtotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.ItemCost()
	}
	return total
}

// DescribeOrderItem renders the invoice-line description for an item,
// matching exhaustively over the closed variant set.
func DescribeOrderItem(item OrderItem) (string, error) {
	switch v := item.(type) {
	case MedicationItem:
		return fmt.Sprintf("Medication: %s (%s, %s)", v.Name, v.Dose, v.Length), nil
	case ProcedureItem:
		return fmt.Sprintf("Procedure: %s (%d times, %s)", v.Name, v.Times, v.Frequency), nil
	case DiagnosticItem:
		return fmt.Sprintf("Diagnostic: %s (%s)", v.Name, v.Reason), nil
	default:
		return "", fmt.Errorf("unknown order item variant %T", item)
	}
}

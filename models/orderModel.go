package models

import (
	"fmt"
	"time"

	"VidaClinic/domain"
)

// Order item kinds as stored.
const (
	ItemKindMedication = "medication"
	ItemKindProcedure  = "procedure"
	ItemKindDiagnostic = "diagnostic"
)

// OrderRow is the order header. The unique index on number is what makes
// concurrent number generation safe; see the order repository.
type OrderRow struct {
	Number    string         `gorm:"primaryKey;column:number;uniqueIndex" json:"number"`
	PatientID string         `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  string         `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Status    string         `gorm:"column:status;check:status IN ('CREATED', 'ITEMS_ADDED', 'INVOICED');not null" json:"status"`
	CreatedAt time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	Items     []OrderItemRow `gorm:"foreignKey:OrderNumber;references:Number" json:"items"`
}

func (OrderRow) TableName() string {
	return "medical_order"
}

// OrderItemRow stores one typed line item. Detail columns are overloaded
// per kind: dose/length for medications, reason for diagnostics,
// times/frequency for procedures.
type OrderItemRow struct {
	ID          uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderNumber string `gorm:"column:order_number;not null;index" json:"order_number"`
	Kind        string `gorm:"column:kind;check:kind IN ('medication', 'procedure', 'diagnostic');not null" json:"kind"`
	Name        string `gorm:"column:name;not null" json:"name"`
	Detail      string `gorm:"column:detail" json:"detail"`
	Extra       string `gorm:"column:extra" json:"extra"`
	Times       int    `gorm:"column:times" json:"times"`
	Cost        int64  `gorm:"column:cost;not null" json:"cost"`
}

func (OrderItemRow) TableName() string {
	return "medical_order_item"
}

func ToOrderRow(o domain.Order) OrderRow {
	row := OrderRow{
		Number:    o.Number.Value(),
		PatientID: o.PatientID.Value(),
		DoctorID:  o.DoctorID.Value(),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
	for _, item := range o.Items {
		row.Items = append(row.Items, toOrderItemRow(o.Number.Value(), item))
	}
	return row
}

func toOrderItemRow(orderNumber string, item domain.OrderItem) OrderItemRow {
	switch v := item.(type) {
	case domain.MedicationItem:
		return OrderItemRow{OrderNumber: orderNumber, Kind: ItemKindMedication, Name: v.Name, Detail: v.Dose, Extra: v.Length, Cost: v.Cost}
	case domain.ProcedureItem:
		return OrderItemRow{OrderNumber: orderNumber, Kind: ItemKindProcedure, Name: v.Name, Times: v.Times, Extra: v.Frequency, Cost: v.Cost}
	case domain.DiagnosticItem:
		return OrderItemRow{OrderNumber: orderNumber, Kind: ItemKindDiagnostic, Name: v.Name, Detail: v.Reason, Cost: v.Cost}
	default:
		// The variant set is closed; reaching this is a programming error.
		panic(fmt.Sprintf("unknown order item variant %T", item))
	}
}

func FromOrderRow(row OrderRow) (domain.Order, error) {
	number, err := domain.NewOrderNumber(row.Number)
	if err != nil {
		return domain.Order{}, err
	}
	patientID, err := domain.NewIdentification(row.PatientID)
	if err != nil {
		return domain.Order{}, err
	}
	doctorID, err := domain.NewIdentification(row.DoctorID)
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		Number:    number,
		PatientID: patientID,
		DoctorID:  doctorID,
		CreatedAt: row.CreatedAt,
		Status:    domain.OrderStatus(row.Status),
	}
	for _, itemRow := range row.Items {
		item, err := fromOrderItemRow(itemRow)
		if err != nil {
			return domain.Order{}, err
		}
		order.Items = append(order.Items, item)
	}
	return order, nil
}

func fromOrderItemRow(row OrderItemRow) (domain.OrderItem, error) {
	switch row.Kind {
	case ItemKindMedication:
		return domain.MedicationItem{Name: row.Name, Dose: row.Detail, Length: row.Extra, Cost: row.Cost}, nil
	case ItemKindProcedure:
		return domain.ProcedureItem{Name: row.Name, Times: row.Times, Frequency: row.Extra, Cost: row.Cost}, nil
	case ItemKindDiagnostic:
		return domain.DiagnosticItem{Name: row.Name, Reason: row.Detail, Cost: row.Cost}, nil
	default:
		return nil, fmt.Errorf("unknown order item kind %q", row.Kind)
	}
}

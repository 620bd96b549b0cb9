package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	number, err := NewOrderNumber("12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", number.Value())

	for _, input := range []string{"", "1234567", "12a45", "12 45", "-1234"} {
		_, err := NewOrderNumber(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestOrderLifecycle(t *testing.T) {
	number, err := NewOrderNumber("000042")
	require.NoError(t, err)
	patientID, err := NewIdentification("1002003000")
	require.NoError(t, err)
	doctorID, err := NewIdentification("52001")
	require.NoError(t, err)

	order := NewOrder(number, patientID, doctorID, time.Now())
	assert.Equal(t, OrderCreated, order.Status)
	assert.Empty(t, order.Items)

	require.NoError(t, order.AddItem(MedicationItem{Name: "Ibuprofen", Dose: "400mg", Length: "5 days", Cost: 12_000}))
	assert.Equal(t, OrderItemsAdded, order.Status)

	require.NoError(t, order.AddItem(DiagnosticItem{Name: "Blood panel", Reason: "routine check", Cost: 45_000}))
	assert.Equal(t, int64(57_000), order.Subtotal())

	require.NoError(t, order.MarkInvoiced())
	assert.Equal(t, OrderInvoiced, order.Status)

	err = order.AddItem(ProcedureItem{Name: "Dressing change", Times: 2, Frequency: "daily", Cost: 8_000})
	assert.Error(t, err)
	assert.Len(t, order.Items, 2)
}

func TestOrderCannotInvoiceWithoutItems(t *testing.T) {
	number, err := NewOrderNumber("7")
	require.NoError(t, err)
	patientID, err := NewIdentification("1")
	require.NoError(t, err)
	doctorID, err := NewIdentification("2")
	require.NoError(t, err)

	order := NewOrder(number, patientID, doctorID, time.Now())
	assert.Error(t, order.MarkInvoiced())
}

func TestOrderRejectsNegativeCost(t *testing.T) {
	number, err := NewOrderNumber("8")
	require.NoError(t, err)
	patientID, err := NewIdentification("1")
	require.NoError(t, err)
	doctorID, err := NewIdentification("2")
	require.NoError(t, err)

	order := NewOrder(number, patientID, doctorID, time.Now())
	err = order.AddItem(MedicationItem{Name: "Ibuprofen", Dose: "400mg", Length: "5 days", Cost: -1})
	assert.Error(t, err)
	assert.Equal(t, OrderCreated, order.Status)
}

func TestDescribeOrderItem(t *testing.T) {
	medication, err := DescribeOrderItem(MedicationItem{Name: "Amoxicillin", Dose: "500mg", Length: "7 days", Cost: 30_000})
	require.NoError(t, err)
	assert.Equal(t, "Medication: Amoxicillin (500mg, 7 days)", medication)

	procedure, err := DescribeOrderItem(ProcedureItem{Name: "Physiotherapy", Times: 10, Frequency: "weekly", Cost: 200_000})
	require.NoError(t, err)
	assert.Equal(t, "Procedure: Physiotherapy (10 times, weekly)", procedure)

	diagnostic, err := DescribeOrderItem(DiagnosticItem{Name: "MRI", Reason: "knee pain", Cost: 450_000})
	require.NoError(t, err)
	assert.Equal(t, "Diagnostic: MRI (knee pain)", diagnostic)
}

package domain

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var orderNumberPattern = regexp.MustCompile(`^[0-9]{1,6}$`)

// OrderNumber identifies a medical order: digits only, at most 6 characters.
// Once issued a number is immutable and globally unique; uniqueness is
// enforced by the order store, not here.
type OrderNumber struct {
	value string
}

func NewOrderNumber(raw string) (OrderNumber, error) {
	trimmed := strings.TrimSpace(raw)
	err := validation.Validate(trimmed,
		validation.Required.Error("cannot be blank"),
		validation.Match(orderNumberPattern).Error("must be 1 to 6 digits"),
	)
	if err != nil {
		return OrderNumber{}, NewValidationError("order number", err.Error())
	}
	return OrderNumber{value: trimmed}, nil
}

func (n OrderNumber) Value() string {
	return n.value
}

func (n OrderNumber) IsZero() bool {
	return n.value == ""
}

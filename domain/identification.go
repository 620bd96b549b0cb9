package domain

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var identificationPattern = regexp.MustCompile(`^[0-9]{1,10}$`)

// Identification is the national id (cedula) used as the natural key for
// patients and staff. Digits only, 1 to 10 characters.
type Identification struct {
	value string
}

func NewIdentification(raw string) (Identification, error) {
	trimmed := strings.TrimSpace(raw)
	err := validation.Validate(trimmed,
		validation.Required.Error("cannot be blank"),
		validation.Match(identificationPattern).Error("must be 1 to 10 digits"),
	)
	if err != nil {
		return Identification{}, NewValidationError("identification", err.Error())
	}
	return Identification{value: trimmed}, nil
}

func (i Identification) Value() string {
	return i.value
}

func (i Identification) IsZero() bool {
	return i.value == ""
}

package domain

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var phonePattern = regexp.MustCompile(`^[0-9]{1,10}$`)

// AllowedEmailDomains is the accept-list for patient and staff addresses.
var AllowedEmailDomains = []string{
	"gmail.com",
	"hotmail.com",
	"outlook.com",
	"yahoo.com",
	"vidaclinic.health",
}

// Phone holds a local phone number: digits only, at most 10 characters.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	err := validation.Validate(trimmed,
		validation.Required.Error("cannot be blank"),
		validation.Match(phonePattern).Error("must be 1 to 10 digits"),
	)
	if err != nil {
		return Phone{}, NewValidationError("phone", err.Error())
	}
	return Phone{value: trimmed}, nil
}

func (p Phone) Value() string {
	return p.value
}

func (p Phone) IsZero() bool {
	return p.value == ""
}

// Email is normalized to lowercase and must belong to an allowed domain.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	// Format-only check: NewEmail runs on every row read, so it must
	// never do network I/O the way is.Email's MX lookup does.
	err := validation.Validate(trimmed,
		validation.Required.Error("cannot be blank"),
		is.EmailFormat,
	)
	if err != nil {
		return Email{}, NewValidationError("email", err.Error())
	}
	at := strings.LastIndex(trimmed, "@")
	domainPart := trimmed[at+1:]
	for _, allowed := range AllowedEmailDomains {
		if domainPart == allowed {
			return Email{value: trimmed}, nil
		}
	}
	return Email{}, NewValidationError("email", "domain "+domainPart+" is not accepted")
}

func (e Email) Value() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

// Address is free-form but required and bounded.
type Address struct {
	value string
}

func NewAddress(raw string) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	err := validation.Validate(trimmed,
		validation.Required.Error("cannot be blank"),
		validation.Length(1, 200).Error("must be at most 200 characters"),
	)
	if err != nil {
		return Address{}, NewValidationError("address", err.Error())
	}
	return Address{value: trimmed}, nil
}

func (a Address) Value() string {
	return a.value
}

func (a Address) IsZero() bool {
	return a.value == ""
}

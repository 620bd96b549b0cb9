package domain

import "time"

// Gender as captured at registration.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func ParseGender(raw string) (Gender, error) {
	switch Gender(raw) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(raw), nil
	}
	return "", NewValidationError("gender", "must be Male, Female or Other")
}

// EmergencyContact is owned by its Patient and has no independent lifecycle.
type EmergencyContact struct {
	Name         string
	Relationship string
	Phone        Phone
}

func NewEmergencyContact(name, relationship string, phone Phone) (EmergencyContact, error) {
	if name == "" {
		return EmergencyContact{}, NewValidationError("emergency contact name", "cannot be blank")
	}
	if relationship == "" {
		return EmergencyContact{}, NewValidationError("emergency contact relationship", "cannot be blank")
	}
	return EmergencyContact{Name: name, Relationship: relationship, Phone: phone}, nil
}

// InsurancePolicy is owned by its Patient. An inactive or expired policy
// gives no copay relief.
type InsurancePolicy struct {
	Company      string
	PolicyNumber string
	Active       bool
	EndDate      time.Time
}

func NewInsurancePolicy(company, policyNumber string, active bool, endDate time.Time) (InsurancePolicy, error) {
	if company == "" {
		return InsurancePolicy{}, NewValidationError("insurance company", "cannot be blank")
	}
	if policyNumber == "" {
		return InsurancePolicy{}, NewValidationError("policy number", "cannot be blank")
	}
	return InsurancePolicy{
		Company:      company,
		PolicyNumber: policyNumber,
		Active:       active,
		EndDate:      endDate,
	}, nil
}

// RemainingDays returns the whole days of coverage left at the given date,
// never negative.
func (p InsurancePolicy) RemainingDays(at time.Time) int {
	days := int(truncateToDay(p.EndDate).Sub(truncateToDay(at)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// IsActiveAt reports whether the policy grants coverage at the given date.
func (p InsurancePolicy) IsActiveAt(at time.Time) bool {
	return p.Active && !truncateToDay(at).After(truncateToDay(p.EndDate))
}

// Patient aggregate. The identification is immutable once assigned;
// EmergencyContact and InsurancePolicy are embedded and owned.
type Patient struct {
	Identification   Identification
	FullName         string
	BirthDate        BirthDate
	Gender           Gender
	Address          Address
	Phone            Phone
	Email            Email
	Username         Username
	Password         Password
	EmergencyContact *EmergencyContact
	InsurancePolicy  *InsurancePolicy
}

func NewPatient(
	identification Identification,
	fullName string,
	birthDate BirthDate,
	gender Gender,
	address Address,
	phone Phone,
	email Email,
	username Username,
	password Password,
) (Patient, error) {
	if fullName == "" {
		return Patient{}, NewValidationError("full name", "cannot be blank")
	}
	return Patient{
		Identification: identification,
		FullName:       fullName,
		BirthDate:      birthDate,
		Gender:         gender,
		Address:        address,
		Phone:          phone,
		Email:          email,
		Username:       username,
		Password:       password,
	}, nil
}

// PatientUpdate is a partial update; nil fields retain the prior value.
// The identification is not part of the update.
type PatientUpdate struct {
	FullName         *string
	BirthDate        *BirthDate
	Gender           *Gender
	Address          *Address
	Phone            *Phone
	Email            *Email
	Username         *Username
	Password         *Password
	EmergencyContact *EmergencyContact
	InsurancePolicy  *InsurancePolicy
}

// Merge applies the partial update field by field and returns the merged
// aggregate. The receiver is not modified.
func (p Patient) Merge(update PatientUpdate) Patient {
	merged := p
	if update.FullName != nil {
		merged.FullName = *update.FullName
	}
	if update.BirthDate != nil {
		merged.BirthDate = *update.BirthDate
	}
	if update.Gender != nil {
		merged.Gender = *update.Gender
	}
	if update.Address != nil {
		merged.Address = *update.Address
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Username != nil {
		merged.Username = *update.Username
	}
	if update.Password != nil {
		merged.Password = *update.Password
	}
	if update.EmergencyContact != nil {
		contact := *update.EmergencyContact
		merged.EmergencyContact = &contact
	}
	if update.InsurancePolicy != nil {
		policy := *update.InsurancePolicy
		merged.InsurancePolicy = &policy
	}
	return merged
}

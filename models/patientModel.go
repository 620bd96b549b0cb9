package models

import (
	"time"

	"VidaClinic/domain"
)

// PatientRow is the relational shape of the Patient aggregate. The
// emergency contact and insurance policy are embedded columns because they
// have no lifecycle of their own.
type PatientRow struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	FullName    string    `gorm:"column:full_name;not null;index" json:"full_name"`
	DateOfBirth time.Time `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Gender      string    `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other');not null" json:"gender"`
	Address     string    `gorm:"column:address;not null" json:"address"`
	Phone       string    `gorm:"column:phone;not null" json:"phone"`
	Email       string    `gorm:"column:email;not null" json:"email"`
	Username    string    `gorm:"column:username;unique;not null" json:"username"`
	// The hash stays in the JSON shape because rows round-trip through the
	// cache; API responses go through the handler DTOs, which omit it.
	PasswordHash string `gorm:"column:password_hash;not null" json:"password_hash"`

	ContactName         string `gorm:"column:contact_name" json:"contact_name"`
	ContactRelationship string `gorm:"column:contact_relationship" json:"contact_relationship"`
	ContactPhone        string `gorm:"column:contact_phone" json:"contact_phone"`

	InsuranceCompany  string     `gorm:"column:insurance_company" json:"insurance_company"`
	InsurancePolicyNo string     `gorm:"column:insurance_policy_no" json:"insurance_policy_no"`
	InsuranceActive   bool       `gorm:"column:insurance_active" json:"insurance_active"`
	InsuranceEndDate  *time.Time `gorm:"column:insurance_end_date" json:"insurance_end_date"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PatientRow) TableName() string {
	return "patient"
}

// ToPatientRow flattens the aggregate for storage.
func ToPatientRow(p domain.Patient) PatientRow {
	row := PatientRow{
		ID:           p.Identification.Value(),
		FullName:     p.FullName,
		DateOfBirth:  p.BirthDate.Value(),
		Gender:       string(p.Gender),
		Address:      p.Address.Value(),
		Phone:        p.Phone.Value(),
		Email:        p.Email.Value(),
		Username:     p.Username.Value(),
		PasswordHash: p.Password.Hash(),
	}
	if p.EmergencyContact != nil {
		row.ContactName = p.EmergencyContact.Name
		row.ContactRelationship = p.EmergencyContact.Relationship
		row.ContactPhone = p.EmergencyContact.Phone.Value()
	}
	if p.InsurancePolicy != nil {
		row.InsuranceCompany = p.InsurancePolicy.Company
		row.InsurancePolicyNo = p.InsurancePolicy.PolicyNumber
		row.InsuranceActive = p.InsurancePolicy.Active
		endDate := p.InsurancePolicy.EndDate
		row.InsuranceEndDate = &endDate
	}
	return row
}

// FromPatientRow rebuilds the aggregate. Stored rows were validated on the
// way in, so a failure here means the row was corrupted out of band.
func FromPatientRow(row PatientRow) (domain.Patient, error) {
	identification, err := domain.NewIdentification(row.ID)
	if err != nil {
		return domain.Patient{}, err
	}
	birthDate, err := domain.NewBirthDate(row.DateOfBirth, time.Now())
	if err != nil {
		return domain.Patient{}, err
	}
	gender, err := domain.ParseGender(row.Gender)
	if err != nil {
		return domain.Patient{}, err
	}
	address, err := domain.NewAddress(row.Address)
	if err != nil {
		return domain.Patient{}, err
	}
	phone, err := domain.NewPhone(row.Phone)
	if err != nil {
		return domain.Patient{}, err
	}
	email, err := domain.NewEmail(row.Email)
	if err != nil {
		return domain.Patient{}, err
	}
	username, err := domain.NewUsername(row.Username)
	if err != nil {
		return domain.Patient{}, err
	}

	patient, err := domain.NewPatient(
		identification,
		row.FullName,
		birthDate,
		gender,
		address,
		phone,
		email,
		username,
		domain.PasswordFromHash(row.PasswordHash),
	)
	if err != nil {
		return domain.Patient{}, err
	}

	if row.ContactName != "" {
		contactPhone, err := domain.NewPhone(row.ContactPhone)
		if err != nil {
			return domain.Patient{}, err
		}
		contact, err := domain.NewEmergencyContact(row.ContactName, row.ContactRelationship, contactPhone)
		if err != nil {
			return domain.Patient{}, err
		}
		patient.EmergencyContact = &contact
	}
	if row.InsuranceCompany != "" && row.InsuranceEndDate != nil {
		policy, err := domain.NewInsurancePolicy(row.InsuranceCompany, row.InsurancePolicyNo, row.InsuranceActive, *row.InsuranceEndDate)
		if err != nil {
			return domain.Patient{}, err
		}
		patient.InsurancePolicy = &policy
	}
	return patient, nil
}

// AppointmentRow schedules a patient with a doctor.
type AppointmentRow struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  string    `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	DateTime  time.Time `gorm:"column:date_time;not null;index" json:"date_time"`
	Status    string    `gorm:"column:status;check:status IN ('scheduled', 'fulfilled', 'cancelled');not null" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AppointmentRow) TableName() string {
	return "appointment"
}

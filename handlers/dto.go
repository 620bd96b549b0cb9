package handlers

import (
	"time"

	"VidaClinic/domain"
)

const dateLayout = "2006-01-02"

type emergencyContactDTO struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type insurancePolicyDTO struct {
	Company      string `json:"company"`
	PolicyNumber string `json:"policy_number"`
	Active       bool   `json:"active"`
	EndDate      string `json:"end_date"`
}

type patientRequest struct {
	Identification   string               `json:"identification"`
	FullName         string               `json:"full_name"`
	DateOfBirth      string               `json:"date_of_birth"`
	Gender           string               `json:"gender"`
	Address          string               `json:"address"`
	Phone            string               `json:"phone"`
	Email            string               `json:"email"`
	Username         string               `json:"username"`
	Password         string               `json:"password"`
	EmergencyContact *emergencyContactDTO `json:"emergency_contact"`
	InsurancePolicy  *insurancePolicyDTO  `json:"insurance_policy"`
}

// patientUpdateRequest carries only the fields present in the body; nil
// means "keep the stored value".
type patientUpdateRequest struct {
	FullName         *string              `json:"full_name"`
	DateOfBirth      *string              `json:"date_of_birth"`
	Gender           *string              `json:"gender"`
	Address          *string              `json:"address"`
	Phone            *string              `json:"phone"`
	Email            *string              `json:"email"`
	Username         *string              `json:"username"`
	Password         *string              `json:"password"`
	EmergencyContact *emergencyContactDTO `json:"emergency_contact"`
	InsurancePolicy  *insurancePolicyDTO  `json:"insurance_policy"`
}

func (req patientRequest) toDomain() (domain.Patient, error) {
	identification, err := domain.NewIdentification(req.Identification)
	if err != nil {
		return domain.Patient{}, err
	}
	birthDate, err := parseBirthDate(req.DateOfBirth)
	if err != nil {
		return domain.Patient{}, err
	}
	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		return domain.Patient{}, err
	}
	address, err := domain.NewAddress(req.Address)
	if err != nil {
		return domain.Patient{}, err
	}
	phone, err := domain.NewPhone(req.Phone)
	if err != nil {
		return domain.Patient{}, err
	}
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		return domain.Patient{}, err
	}
	username, err := domain.NewUsername(req.Username)
	if err != nil {
		return domain.Patient{}, err
	}
	password, err := domain.NewPassword(req.Password)
	if err != nil {
		return domain.Patient{}, err
	}

	patient, err := domain.NewPatient(identification, req.FullName, birthDate, gender, address, phone, email, username, password)
	if err != nil {
		return domain.Patient{}, err
	}

	if req.EmergencyContact != nil {
		contact, err := req.EmergencyContact.toDomain()
		if err != nil {
			return domain.Patient{}, err
		}
		patient.EmergencyContact = &contact
	}
	if req.InsurancePolicy != nil {
		policy, err := req.InsurancePolicy.toDomain()
		if err != nil {
			return domain.Patient{}, err
		}
		patient.InsurancePolicy = &policy
	}
	return patient, nil
}

func (req patientUpdateRequest) toDomain() (domain.PatientUpdate, error) {
	var update domain.PatientUpdate
	update.FullName = req.FullName
	if req.DateOfBirth != nil {
		birthDate, err := parseBirthDate(*req.DateOfBirth)
		if err != nil {
			return domain.PatientUpdate{}, err
		}
		update.BirthDate = &birthDate
	}
	if req.Gender != nil {
		gender, err := domain.ParseGender(*req.Gender)
		if err != nil {
			return domain.PatientUpdate{}, err
		}
		update.Gender = &gender
	}
	if req.Address != nil {
		address, err := domain.NewAddress(*req.Address)
		if err != nil {
			return domain.PatientUpdate{}, err
		}
		update.Address = &address
	}
	if req.Phone != nil {
		phone, err := domain.NewPhone(*req.Phone)
		if err != nil {
			return domain.PatientUpdate{}, err
		}
		update.Phone = &phone
	}
	if req.Email != nil {
		email, err := domain.NewEmail(*req.Email)
		if err != nil {
			return domain.PatientUpdate{}, err
		}
		update.Email = &email
	}
	if req.Username != nil {
		username, err := domain.NewUsername(*req.Username)
		if err != nil {
			return domain.PatientUpdate{}, err
		}
		update.Username = &username
	}
	if req.Password != nil {
		password, err := domain.NewPassword(*req.Password)
		if err != nil {
			return domain.PatientUpdate{}, err
		}
		update.Password = &password
	}
	if req.EmergencyContact != nil {
		contact, err := req.EmergencyContact.toDomain()
		if err != nil {
			return domain.PatientUpdate{}, err
		}
		update.EmergencyContact = &contact
	}
	if req.InsurancePolicy != nil {
		policy, err := req.InsurancePolicy.toDomain()
		if err != nil {
			return domain.PatientUpdate{}, err
		}
		update.InsurancePolicy = &policy
	}
	return update, nil
}

func (dto emergencyContactDTO) toDomain() (domain.EmergencyContact, error) {
	phone, err := domain.NewPhone(dto.Phone)
	if err != nil {
		return domain.EmergencyContact{}, err
	}
	return domain.NewEmergencyContact(dto.Name, dto.Relationship, phone)
}

func (dto insurancePolicyDTO) toDomain() (domain.InsurancePolicy, error) {
	endDate, err := time.Parse(dateLayout, dto.EndDate)
	if err != nil {
		return domain.InsurancePolicy{}, domain.NewValidationError("policy end date", "must be YYYY-MM-DD")
	}
	return domain.NewInsurancePolicy(dto.Company, dto.PolicyNumber, dto.Active, endDate)
}

func parseBirthDate(raw string) (domain.BirthDate, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return domain.BirthDate{}, domain.NewValidationError("date of birth", "must be YYYY-MM-DD")
	}
	return domain.NewBirthDate(parsed, time.Now())
}

type userRequest struct {
	Identification string `json:"identification"`
	FullName       string `json:"full_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

func (req userRequest) toDomain() (domain.User, error) {
	identification, err := domain.NewIdentification(req.Identification)
	if err != nil {
		return domain.User{}, err
	}
	birthDate, err := parseBirthDate(req.DateOfBirth)
	if err != nil {
		return domain.User{}, err
	}
	address, err := domain.NewAddress(req.Address)
	if err != nil {
		return domain.User{}, err
	}
	phone, err := domain.NewPhone(req.Phone)
	if err != nil {
		return domain.User{}, err
	}
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		return domain.User{}, err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return domain.User{}, err
	}
	username, err := domain.NewUsername(req.Username)
	if err != nil {
		return domain.User{}, err
	}
	password, err := domain.NewPassword(req.Password)
	if err != nil {
		return domain.User{}, err
	}
	return domain.NewUser(identification, req.FullName, birthDate, address, phone, email, role, username, password)
}

type orderItemDTO struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	Length    string `json:"length"`
	Times     int    `json:"times"`
	Frequency string `json:"frequency"`
	Reason    string `json:"reason"`
	Cost      int64  `json:"cost"`
}

func (dto orderItemDTO) toDomain() (domain.OrderItem, error) {
	switch dto.Kind {
	case "medication":
		return domain.MedicationItem{Name: dto.Name, Dose: dto.Dose, Length: dto.Length, Cost: dto.Cost}, nil
	case "procedure":
		return domain.ProcedureItem{Name: dto.Name, Times: dto.Times, Frequency: dto.Frequency, Cost: dto.Cost}, nil
	case "diagnostic":
		return domain.DiagnosticItem{Name: dto.Name, Reason: dto.Reason, Cost: dto.Cost}, nil
	default:
		return nil, domain.NewValidationError("order item kind", "must be medication, procedure or diagnostic")
	}
}

func orderItemsToDomain(dtos []orderItemDTO) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toOrderItemDTO(item domain.OrderItem) orderItemDTO {
	switch v := item.(type) {
	case domain.MedicationItem:
		return orderItemDTO{Kind: "medication", Name: v.Name, Dose: v.Dose, Length: v.Length, Cost: v.Cost}
	case domain.ProcedureItem:
		return orderItemDTO{Kind: "procedure", Name: v.Name, Times: v.Times, Frequency: v.Frequency, Cost: v.Cost}
	case domain.DiagnosticItem:
		return orderItemDTO{Kind: "diagnostic", Name: v.Name, Reason: v.Reason, Cost: v.Cost}
	default:
		return orderItemDTO{}
	}
}

// orderResponse flattens the value objects so the client sees the
// generated order number, not an opaque struct.
type orderResponse struct {
	Number    string         `json:"number"`
	PatientID string         `json:"patient_id"`
	DoctorID  string         `json:"doctor_id"`
	Status    string         `json:"status"`
	CreatedAt string         `json:"created_at"`
	Items     []orderItemDTO `json:"items"`
	Subtotal  int64          `json:"subtotal"`
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, toOrderItemDTO(item))
	}
	return orderResponse{
		Number:    o.Number.Value(),
		PatientID: o.PatientID.Value(),
		DoctorID:  o.DoctorID.Value(),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		Items:     items,
		Subtotal:  o.Subtotal(),
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	responses := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}

type invoiceLineDTO struct {
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
}

type invoiceResponse struct {
	ID                    string           `json:"id"`
	PatientName           string           `json:"patient_name"`
	PatientAge            int              `json:"patient_age"`
	PatientIdentification string           `json:"patient_identification"`
	DoctorName            string           `json:"doctor_name"`
	InsurerName           string           `json:"insurer_name,omitempty"`
	PolicyNumber          string           `json:"policy_number,omitempty"`
	PolicyRemainingDays   int              `json:"policy_remaining_days,omitempty"`
	PolicyEndDate         string           `json:"policy_end_date,omitempty"`
	Lines                 []invoiceLineDTO `json:"lines"`
	Copay                 int64            `json:"copay"`
	Subtotal              int64            `json:"subtotal"`
	IssuedAt              string           `json:"issued_at"`
}

func toInvoiceResponse(inv domain.Invoice) invoiceResponse {
	lines := make([]invoiceLineDTO, 0, len(inv.Lines))
	for _, line := range inv.Lines {
		lines = append(lines, invoiceLineDTO{Description: line.Description, Cost: line.Cost})
	}
	resp := invoiceResponse{
		ID:                    inv.ID,
		PatientName:           inv.PatientName,
		PatientAge:            inv.PatientAge,
		PatientIdentification: inv.PatientIdentification.Value(),
		DoctorName:            inv.DoctorName,
		InsurerName:           inv.InsurerName,
		PolicyNumber:          inv.PolicyNumber,
		PolicyRemainingDays:   inv.PolicyRemainingDays,
		Lines:                 lines,
		Copay:                 inv.Copay,
		Subtotal:              inv.Subtotal,
		IssuedAt:              inv.IssuedAt.Format(time.RFC3339),
	}
	if inv.PolicyEndDate != nil {
		resp.PolicyEndDate = inv.PolicyEndDate.Format(dateLayout)
	}
	return resp
}

func toInvoiceResponses(invoices []domain.Invoice) []invoiceResponse {
	responses := make([]invoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, toInvoiceResponse(inv))
	}
	return responses
}

// patientResponse hides credentials from API output.
type patientResponse struct {
	Identification   string               `json:"identification"`
	FullName         string               `json:"full_name"`
	DateOfBirth      string               `json:"date_of_birth"`
	Gender           string               `json:"gender"`
	Address          string               `json:"address"`
	Phone            string               `json:"phone"`
	Email            string               `json:"email"`
	Username         string               `json:"username"`
	EmergencyContact *emergencyContactDTO `json:"emergency_contact,omitempty"`
	InsurancePolicy  *insurancePolicyDTO  `json:"insurance_policy,omitempty"`
}

func toPatientResponse(p domain.Patient) patientResponse {
	resp := patientResponse{
		Identification: p.Identification.Value(),
		FullName:       p.FullName,
		DateOfBirth:    p.BirthDate.Value().Format(dateLayout),
		Gender:         string(p.Gender),
		Address:        p.Address.Value(),
		Phone:          p.Phone.Value(),
		Email:          p.Email.Value(),
		Username:       p.Username.Value(),
	}
	if p.EmergencyContact != nil {
		resp.EmergencyContact = &emergencyContactDTO{
			Name:         p.EmergencyContact.Name,
			Relationship: p.EmergencyContact.Relationship,
			Phone:        p.EmergencyContact.Phone.Value(),
		}
	}
	if p.InsurancePolicy != nil {
		resp.InsurancePolicy = &insurancePolicyDTO{
			Company:      p.InsurancePolicy.Company,
			PolicyNumber: p.InsurancePolicy.PolicyNumber,
			Active:       p.InsurancePolicy.Active,
			EndDate:      p.InsurancePolicy.EndDate.Format(dateLayout),
		}
	}
	return resp
}

func toPatientResponses(patients []domain.Patient) []patientResponse {
	responses := make([]patientResponse, 0, len(patients))
	for _, p := range patients {
		responses = append(responses, toPatientResponse(p))
	}
	return responses
}

type userResponse struct {
	Identification string `json:"identification"`
	FullName       string `json:"full_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Username       string `json:"username"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		Identification: u.Identification.Value(),
		FullName:       u.FullName,
		DateOfBirth:    u.BirthDate.Value().Format(dateLayout),
		Address:        u.Address.Value(),
		Phone:          u.Phone.Value(),
		Email:          u.Email.Value(),
		Role:           string(u.Role),
		Username:       u.Username.Value(),
	}
}

func toUserResponses(users []domain.User) []userResponse {
	responses := make([]userResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses
}

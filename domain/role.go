package domain

// Role is the staff role assigned to a User. Capabilities are a fixed
// lookup table, not a generic RBAC engine.
type Role string

const (
	RoleDoctor         Role = "DOCTOR"
	RoleNurse          Role = "NURSE"
	RoleHumanResources Role = "HUMAN_RESOURCES"
	RoleAdministrative Role = "ADMINISTRATIVE"
	RoleStaff          Role = "STAFF"
	RoleSupport        Role = "SUPPORT"
)

var allRoles = map[Role]struct{}{
	RoleDoctor:         {},
	RoleNurse:          {},
	RoleHumanResources: {},
	RoleAdministrative: {},
	RoleStaff:          {},
	RoleSupport:        {},
}

func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if _, ok := allRoles[role]; !ok {
		return "", NewValidationError("role", "unknown role "+raw)
	}
	return role, nil
}

// Capability table. Clinical roles read patient charts, HR and the
// administrative desk manage staff accounts, the front desk registers
// patients.
func (r Role) CanViewPatientInfo() bool {
	return r == RoleDoctor || r == RoleNurse
}

func (r Role) CanManageUsers() bool {
	return r == RoleHumanResources || r == RoleAdministrative
}

func (r Role) CanRegisterPatients() bool {
	return r == RoleAdministrative || r == RoleStaff
}

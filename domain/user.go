package domain

// User is a staff member. The role drives the authorization predicates in
// the user service.
type User struct {
	Identification Identification
	FullName       string
	BirthDate      BirthDate
	Address        Address
	Phone          Phone
	Email          Email
	Role           Role
	Username       Username
	Password       Password
}

func NewUser(
	identification Identification,
	fullName string,
	birthDate BirthDate,
	address Address,
	phone Phone,
	email Email,
	role Role,
	username Username,
	password Password,
) (User, error) {
	if fullName == "" {
		return User{}, NewValidationError("full name", "cannot be blank")
	}
	return User{
		Identification: identification,
		FullName:       fullName,
		BirthDate:      birthDate,
		Address:        address,
		Phone:          phone,
		Email:          email,
		Role:           role,
		Username:       username,
		Password:       password,
	}, nil
}

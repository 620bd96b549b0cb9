package models

import (
	"time"

	"VidaClinic/domain"
)

// UserRow is the relational shape of a staff User.
type UserRow struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	FullName    string    `gorm:"column:full_name;not null" json:"full_name"`
	DateOfBirth time.Time `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Address     string    `gorm:"column:address;not null" json:"address"`
	Phone       string    `gorm:"column:phone;not null" json:"phone"`
	Email       string    `gorm:"column:email;not null" json:"email"`
	Role        string    `gorm:"column:role;not null;index" json:"role"`
	Username    string    `gorm:"column:username;unique;not null;index" json:"username"`
	// The hash stays in the JSON shape because rows round-trip through the
	// cache; API responses go through the handler DTOs, which omit it.
	PasswordHash string    `gorm:"column:password_hash;not null" json:"password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserRow) TableName() string {
	return "users"
}

func ToUserRow(u domain.User) UserRow {
	return UserRow{
		ID:           u.Identification.Value(),
		FullName:     u.FullName,
		DateOfBirth:  u.BirthDate.Value(),
		Address:      u.Address.Value(),
		Phone:        u.Phone.Value(),
		Email:        u.Email.Value(),
		Role:         string(u.Role),
		Username:     u.Username.Value(),
		PasswordHash: u.Password.Hash(),
	}
}

func FromUserRow(row UserRow) (domain.User, error) {
	identification, err := domain.NewIdentification(row.ID)
	if err != nil {
		return domain.User{}, err
	}
	birthDate, err := domain.NewBirthDate(row.DateOfBirth, time.Now())
	if err != nil {
		return domain.User{}, err
	}
	address, err := domain.NewAddress(row.Address)
	if err != nil {
		return domain.User{}, err
	}
	phone, err := domain.NewPhone(row.Phone)
	if err != nil {
		return domain.User{}, err
	}
	email, err := domain.NewEmail(row.Email)
	if err != nil {
		return domain.User{}, err
	}
	role, err := domain.ParseRole(row.Role)
	if err != nil {
		return domain.User{}, err
	}
	username, err := domain.NewUsername(row.Username)
	if err != nil {
		return domain.User{}, err
	}
	return domain.NewUser(
		identification,
		row.FullName,
		birthDate,
		address,
		phone,
		email,
		role,
		username,
		domain.PasswordFromHash(row.PasswordHash),
	)
}

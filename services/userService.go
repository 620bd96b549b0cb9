package services

import (
	"context"
	"errors"

	"VidaClinic/domain"
)

// ErrInvalidCredentials is returned on a failed login; it deliberately
// does not reveal whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if err := s.store.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id domain.Identification) (domain.User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.store.GetAll(ctx)
}

func (s *UserService) Update(ctx context.Context, user domain.User) error {
	return s.store.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id domain.Identification) error {
	return s.store.Delete(ctx, id)
}

// Authenticate verifies a username/password pair. Credentials are compared
// with Password.Matches, never with equality.
func (s *UserService) Authenticate(ctx context.Context, username domain.Username, plaintext string) (domain.User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		var notFound *domain.EntityNotFoundError
		if errors.As(err, &notFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if !user.Password.Matches(plaintext) {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Authorization predicates: pure lookups against the role capability
// table. An unknown acting user is EntityNotFoundError, not a denial.

func (s *UserService) CanViewPatientInfo(ctx context.Context, actingUserID domain.Identification) (bool, error) {
	user, err := s.store.GetByID(ctx, actingUserID)
	if err != nil {
		return false, err
	}
	return user.Role.CanViewPatientInfo(), nil
}

func (s *UserService) CanManageUsers(ctx context.Context, actingUserID domain.Identification) (bool, error) {
	user, err := s.store.GetByID(ctx, actingUserID)
	if err != nil {
		return false, err
	}
	return user.Role.CanManageUsers(), nil
}

func (s *UserService) CanRegisterPatients(ctx context.Context, actingUserID domain.Identification) (bool, error) {
	user, err := s.store.GetByID(ctx, actingUserID)
	if err != nil {
		return false, err
	}
	return user.Role.CanRegisterPatients(), nil
}

// ChangePassword sets a new password after verifying the current one.
func (s *UserService) ChangePassword(ctx context.Context, id domain.Identification, current, next string) error {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.Password.Matches(current) {
		return ErrInvalidCredentials
	}
	password, err := domain.NewPassword(next)
	if err != nil {
		return err
	}
	user.Password = password
	return s.store.Update(ctx, user)
}

// ResetPassword sets a new password without the current one; the caller
// has already verified a reset code delivered out of band.
func (s *UserService) ResetPassword(ctx context.Context, email domain.Email, next string) error {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	password, err := domain.NewPassword(next)
	if err != nil {
		return err
	}
	user.Password = password
	return s.store.Update(ctx, user)
}

package domain

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`)

	passwordLowercase = regexp.MustCompile(`[a-z]`)
	passwordUppercase = regexp.MustCompile(`[A-Z]`)
	passwordDigit     = regexp.MustCompile(`\d`)
	passwordSpecial   = regexp.MustCompile(`[@$!%*?&#.\-_]`)
)

// PasswordDevBypass is accepted regardless of the complexity policy so that
// seeded demo accounts keep working in development environments.
const PasswordDevBypass = "letmein-dev"

// Username is normalized to lowercase. Letters, digits and underscore,
// at most 15 characters.
type Username struct {
	value string
}

func NewUsername(raw string) (Username, error) {
	trimmed := strings.TrimSpace(raw)
	err := validation.Validate(trimmed,
		validation.Required.Error("cannot be blank"),
		validation.Match(usernamePattern).Error("must be at most 15 letters, digits or underscores"),
	)
	if err != nil {
		return Username{}, NewValidationError("username", err.Error())
	}
	return Username{value: strings.ToLower(trimmed)}, nil
}

func (u Username) Value() string {
	return u.value
}

func (u Username) IsZero() bool {
	return u.value == ""
}

// Password stores a bcrypt hash, never the plaintext. Two Password values
// built from the same plaintext carry different salted hashes, so generic
// equality between instances is always false; callers must use Matches.
type Password struct {
	hash string
}

func NewPassword(plaintext string) (Password, error) {
	if plaintext != PasswordDevBypass {
		if err := checkPasswordPolicy(plaintext); err != nil {
			return Password{}, err
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return Password{}, err
	}
	return Password{hash: string(hash)}, nil
}

// PasswordFromHash rehydrates a Password from its stored hash.
func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

// Matches reports whether the plaintext corresponds to this password.
func (p Password) Matches(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plaintext)) == nil
}

// Equals is deliberately always false; credentials are compared with
// Matches, never with generic equality.
func (p Password) Equals(Password) bool {
	return false
}

func (p Password) Hash() string {
	return p.hash
}

func (p Password) IsZero() bool {
	return p.hash == ""
}

func checkPasswordPolicy(plaintext string) error {
	if len(plaintext) < 8 {
		return NewValidationError("password", "must be at least 8 characters long")
	}
	if !passwordLowercase.MatchString(plaintext) ||
		!passwordUppercase.MatchString(plaintext) ||
		!passwordDigit.MatchString(plaintext) ||
		!passwordSpecial.MatchString(plaintext) {
		return NewValidationError("password", "must include an uppercase letter, a lowercase letter, a digit and a special character")
	}
	return nil
}

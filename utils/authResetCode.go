package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"VidaClinic/cache"
)

// Reset codes live long enough for one email round trip.
const resetCodeTTL = 15 * time.Minute

func resetCodeKey(email string) string {
	return "reset_code:" + email
}

// GenerateResetCode draws a random 6-digit code. Codes guard account
// recovery, so they come from crypto/rand.
func GenerateResetCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		// crypto/rand failing means the platform is broken.
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// SetResetCode stores the code for an email with a short expiry.
func SetResetCode(ctx context.Context, email, code string) error {
	store, err := cache.NewCache()
	if err != nil {
		return err
	}
	return store.Set(ctx, resetCodeKey(email), code, resetCodeTTL)
}

// GetResetCode returns the stored code, or nil when none is pending.
func GetResetCode(ctx context.Context, email string) (*string, error) {
	store, err := cache.NewCache()
	if err != nil {
		return nil, err
	}
	code, err := store.Get(ctx, resetCodeKey(email))
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, nil
	}
	return &code, nil
}

// DeleteResetCode invalidates a consumed code.
func DeleteResetCode(ctx context.Context, email string) error {
	store, err := cache.NewCache()
	if err != nil {
		return err
	}
	return store.Delete(ctx, resetCodeKey(email))
}

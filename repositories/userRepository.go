package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"VidaClinic/cache"
	"VidaClinic/database"
	"VidaClinic/domain"
	"VidaClinic/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const UserCacheExpiry = 24 * time.Hour

type UserRepository struct {
	cache *cache.Cache
}

func NewUserRepository(cache *cache.Cache) *UserRepository {
	return &UserRepository{cache: cache}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	lockKey := fmt.Sprintf("user_lock:%s", user.Identification.Value())
	lockValue := uuid.New().String()

	locked, err := database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return domain.NewDuplicateEntityError("user", user.Identification.Value())
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	row := models.ToUserRow(user)
	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.UserRow
		err := tx.Select("id").First(&existing, "id = ? OR username = ?", row.ID, row.Username).Error
		if err == nil {
			return domain.NewDuplicateEntityError("user", row.ID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing user: %w", err)
		}
		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.NewDuplicateEntityError("user", row.ID)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx, row.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.Identification) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.userCacheKey(id.Value())
	var cached models.UserRow
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		log.Printf("Failed to get user from cache: %v", err)
	} else if found {
		return models.FromUserRow(cached)
	}

	var row models.UserRow
	err := database.DB.WithContext(ctx).First(&row, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NewEntityNotFoundError("user", id.Value())
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, row, UserCacheExpiry); err != nil {
		log.Printf("Failed to set user in cache: %v", err)
	}
	return models.FromUserRow(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var row models.UserRow
	err := database.DB.WithContext(ctx).First(&row, "username = ?", username.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NewEntityNotFoundError("user", username.Value())
		}
		return domain.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return models.FromUserRow(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var row models.UserRow
	err := database.DB.WithContext(ctx).First(&row, "email = ?", email.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NewEntityNotFoundError("user", email.Value())
		}
		return domain.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return models.FromUserRow(row)
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rows []models.UserRow
	if err := database.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		user, err := models.FromUserRow(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	row := models.ToUserRow(user)
	result := database.DB.WithContext(ctx).Model(&models.UserRow{}).Where("id = ?", row.ID).Updates(map[string]interface{}{
		"full_name":     row.FullName,
		"date_of_birth": row.DateOfBirth,
		"address":       row.Address,
		"phone":         row.Phone,
		"email":         row.Email,
		"role":          row.Role,
		"username":      row.Username,
		"password_hash": row.PasswordHash,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewEntityNotFoundError("user", row.ID)
	}

	r.invalidate(ctx, row.ID)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id domain.Identification) error {
	result := database.DB.WithContext(ctx).Delete(&models.UserRow{}, "id = ?", id.Value())
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewEntityNotFoundError("user", id.Value())
	}

	r.invalidate(ctx, id.Value())
	return nil
}

func (r *UserRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, r.userCacheKey(id)); err != nil {
		log.Printf("Failed to delete user cache: %v", err)
	}
}

func (r *UserRepository) userCacheKey(id string) string {
	return fmt.Sprintf("user_cache:%s", id)
}

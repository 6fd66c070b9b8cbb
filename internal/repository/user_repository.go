package repository

import (
	"context"

	"gorm.io/gorm"

	"policydesk/internal/model"
)

// UserRepository defines admin user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	DeleteAll(ctx context.Context) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new admin user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new admin user.
func (r *userRepository) Create(ctx context.Context, user *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail finds an admin user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteAll wipes all admin users. Seeding recreates the single operator
// account from scratch.
func (r *userRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.AdminUser{}).Error
}

package auth

import (
	"context"

	"Recipe-Blog-Backend/entities"

	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		FindByEmail(ctx context.Context, email string) (*entities.AdminUser, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	var admin entities.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"freelance-hub-api/entity"
)

type AuthRepository struct {
	Repository[entity.Account]
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{Repository[entity.Account]{DB: db}}
}

func (repository AuthRepository) FindByUsername(ctx context.Context, username string) (entity.Account, error) {
	account := &entity.Account{}
	err := repository.DB.WithContext(ctx).
		Preload("User").
		Where("user_name = ?", username).
		First(account).Error
	if err != nil {
		return *account, err
	}
	return *account, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"freelance-hub-api/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository[entity.User]{DB: db}}
}

func (repository UserRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := repository.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

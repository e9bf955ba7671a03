package usecase

import (
	"context"

	"freelance-hub-api/dto/res"
)

type UserUsecase interface {
	GetUserByID(ctx context.Context, token string) (res.UserResponse, error)
	GetAllUser(ctx context.Context) ([]res.UserResponse, error)
}

package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"freelance-hub-api/dto/res"
	"freelance-hub-api/entity"
	"freelance-hub-api/repository"
	"freelance-hub-api/security"
)

type UserUsecaseImpl struct {
	UserRepository *repository.UserRepository
	Logger         *logrus.Logger
	JWT            *security.JWT
}

func NewUserUsecase(userRepository *repository.UserRepository, logger *logrus.Logger, jwt *security.JWT) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Logger: logger, JWT: jwt}
}

func (uc *UserUsecaseImpl) GetUserByID(ctx context.Context, token string) (res.UserResponse, error) {
	userID, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to extract user ID from token")
		return res.UserResponse{}, errors.New("invalid token")
	}

	user, err := uc.UserRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.Logger.Warnf("User %s not found", userID)
		} else {
			uc.Logger.WithError(err).Errorf("Failed to find user %s", userID)
		}
		return res.UserResponse{}, err
	}

	return serializeUser(user), nil
}

func (uc *UserUsecaseImpl) GetAllUser(ctx context.Context) ([]res.UserResponse, error) {
	var users []entity.User
	if err := uc.UserRepository.FindAll(ctx, &users); err != nil {
		uc.Logger.WithError(err).Error("Failed to list users")
		return nil, err
	}

	responses := make([]res.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, serializeUser(&users[i]))
	}
	return responses, nil
}

func serializeUser(user *entity.User) res.UserResponse {
	return res.UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
		Role:   string(user.Role),
	}
}

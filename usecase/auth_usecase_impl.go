package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"freelance-hub-api/dto/req"
	"freelance-hub-api/dto/res"
	"freelance-hub-api/entity"
	"freelance-hub-api/enum"
	"freelance-hub-api/repository"
	"freelance-hub-api/security"
	"freelance-hub-api/util"
)

type AuthUsecaseImpl struct {
	AuthRepository *repository.AuthRepository
	Validate       *validator.Validate
	Logger         *logrus.Logger
	JWT            *security.JWT
}

func NewAuthUsecase(authRepository *repository.AuthRepository, validate *validator.Validate, logger *logrus.Logger, jwt *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{AuthRepository: authRepository, Validate: validate, Logger: logger, JWT: jwt}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate register request")
		return res.RegisterResponse{}, err
	}

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to hash password")
		return res.RegisterResponse{}, err
	}

	role := enum.RoleFreelancer
	if request.Role != "" {
		role = enum.Role(request.Role)
	}

	newAccount := &entity.Account{
		UserName: request.Username,
		Password: hashPassword,
		User: entity.User{
			Name:  request.Name,
			Email: request.Email,
			Role:  role,
		},
	}

	if err := uc.AuthRepository.Save(ctx, newAccount); err != nil {
		uc.Logger.WithError(err).Errorf("Failed to save account for username %s", request.Username)
		return res.RegisterResponse{}, err
	}

	return res.RegisterResponse{
		ID:       newAccount.ID,
		Username: newAccount.UserName,
		Email:    newAccount.User.Email,
	}, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate login request")
		return res.LoginResponse{}, err
	}

	currentAccount, err := uc.AuthRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to find username %s", request.Username)
		return res.LoginResponse{}, errors.New("invalid username or password")
	}

	if matched := util.ComparePassword(currentAccount.Password, request.Password); !matched {
		uc.Logger.Warnf("Password mismatch for username %s", request.Username)
		return res.LoginResponse{}, errors.New("invalid username or password")
	}

	token, err := uc.JWT.GenerateToken(&currentAccount.User)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to generate token")
		return res.LoginResponse{}, err
	}

	return res.LoginResponse{
		Token: token,
		User: res.UserResponse{
			ID:     currentAccount.User.ID,
			Name:   currentAccount.User.Name,
			Email:  currentAccount.User.Email,
			Avatar: currentAccount.User.Avatar,
			Role:   string(currentAccount.User.Role),
		},
	}, nil
}

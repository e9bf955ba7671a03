package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"freelance-hub-api/dto/res"
	"freelance-hub-api/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetCurrentUser(ctx *fiber.Ctx) error {
	token := ctx.Get("Authorization")[7:]

	userResponse, err := handler.UserUsecase.GetUserByID(ctx.Context(), token)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get current user")
		return ctx.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      err.Error(),
		})
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully to get current user",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) GetAllUser(ctx *fiber.Ctx) error {
	userResponses, err := handler.UserUsecase.GetAllUser(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get all users")
		return fiber.ErrInternalServerError
	}

	response := res.CommonResponse[[]res.UserResponse]{
		Message:    "Successfully to get all users",
		StatusCode: fiber.StatusOK,
		Data:       userResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

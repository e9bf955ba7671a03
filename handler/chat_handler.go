package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"freelance-hub-api/dto/req"
	"freelance-hub-api/dto/res"
	"freelance-hub-api/usecase"
)

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		ChatUsecase: chatUsecase,
		Logger:      logger,
	}
}

func (handler *ChatHandler) GetAllRooms(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return fiber.ErrUnauthorized
	}

	roomResponses, err := handler.ChatUsecase.GetRoomsByUser(c.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get rooms by user")
		return fiber.ErrInternalServerError
	}

	response := res.CommonResponse[[]res.RoomResponse]{
		Message:    "Successfully to get all rooms",
		StatusCode: fiber.StatusOK,
		Data:       roomResponses,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) CreateRoom(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return fiber.ErrUnauthorized
	}

	payload := new(req.CreateRoomRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	room, err := handler.ChatUsecase.CreateRoom(c.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create room")
		return c.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{
			Status:     fiber.ErrBadRequest.Message,
			StatusCode: fiber.StatusBadRequest,
			Error:      err.Error(),
		})
	}

	response := res.CommonResponse[res.RoomResponse]{
		Message:    "Successfully to create room",
		StatusCode: fiber.StatusCreated,
		Data: res.RoomResponse{
			RoomID:      room.ID,
			DisplayName: room.Name,
			IsGroup:     room.IsGroup,
		},
	}
	handler.Logger.Infof("Room %s created by user %s", room.ID, userID)
	return c.Status(fiber.StatusCreated).JSON(response)
}

func (handler *ChatHandler) GetMessagesByRoomID(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return fiber.ErrUnauthorized
	}

	roomID := c.Params("roomId")
	if roomID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "roomId is required",
		})
	}

	messages, err := handler.ChatUsecase.GetMessagesByRoomID(c.Context(), userID, roomID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get messages by room ID")
		return c.Status(fiber.StatusForbidden).JSON(res.ErrorResponse{
			Status:     fiber.ErrForbidden.Message,
			StatusCode: fiber.StatusForbidden,
			Error:      err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"roomId":   roomID,
		"messages": messages,
	})
}

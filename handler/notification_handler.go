package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"freelance-hub-api/dto/res"
	"freelance-hub-api/usecase"
)

type NotificationHandler struct {
	usecase.NotificationUsecase
	*logrus.Logger
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{
		NotificationUsecase: notificationUsecase,
		Logger:              logger,
	}
}

func (handler *NotificationHandler) GetAllNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return fiber.ErrUnauthorized
	}

	notifications, err := handler.NotificationUsecase.GetByUser(c.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get notifications")
		return fiber.ErrInternalServerError
	}

	response := res.CommonResponse[[]res.NotificationResponse]{
		Message:    "Successfully to get all notifications",
		StatusCode: fiber.StatusOK,
		Data:       notifications,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

func (handler *NotificationHandler) MarkNotificationRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return fiber.ErrUnauthorized
	}

	notificationID := c.Params("notificationId")
	if notificationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "notificationId is required",
		})
	}

	unreadCount, err := handler.NotificationUsecase.MarkRead(c.Context(), notificationID, userID)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to mark notification %s read", notificationID)
		return c.Status(fiber.StatusNotFound).JSON(res.ErrorResponse{
			Status:     fiber.ErrNotFound.Message,
			StatusCode: fiber.StatusNotFound,
			Error:      err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"notificationId": notificationID,
		"unreadCount":    unreadCount,
	})
}

func (handler *NotificationHandler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return fiber.ErrUnauthorized
	}

	if err := handler.NotificationUsecase.MarkAllRead(c.Context(), userID); err != nil {
		handler.Logger.WithError(err).Error("Failed to mark all notifications read")
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"message": "All notifications marked as read",
	})
}

func (handler *NotificationHandler) ClearAllNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return fiber.ErrUnauthorized
	}

	if err := handler.NotificationUsecase.ClearAll(c.Context(), userID); err != nil {
		handler.Logger.WithError(err).Error("Failed to clear notifications")
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"message": "All notifications cleared",
	})
}

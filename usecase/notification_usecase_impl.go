package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"freelance-hub-api/dto"
	"freelance-hub-api/dto/res"
	"freelance-hub-api/entity"
	"freelance-hub-api/enum"
	"freelance-hub-api/ws"
)

type NotificationUsecaseImpl struct {
	Store  NotificationStore
	Hub    Broadcaster
	Logger *logrus.Logger
}

func NewNotificationUsecase(store NotificationStore, hub Broadcaster, logger *logrus.Logger) *NotificationUsecaseImpl {
	return &NotificationUsecaseImpl{Store: store, Hub: hub, Logger: logger}
}

func (uc *NotificationUsecaseImpl) Notify(ctx context.Context, input NotifyInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		UserID:     input.UserID,
		Title:      input.Title,
		Message:    input.Message,
		Type:       input.Type,
		Priority:   input.Priority,
		ActionURL:  input.ActionURL,
		ActionText: input.ActionText,
		Data:       marshalData(input.Data),
		RefKind:    input.RefKind,
		RefID:      input.RefID,
	}
	if notification.Title == "" {
		notification.Title = "New Notification"
	}
	if notification.Type == "" {
		notification.Type = enum.NotificationInfo
	}
	if notification.Priority == "" {
		notification.Priority = enum.PriorityMedium
	}

	// Durability precedes delivery.
	if err := uc.Store.CreateNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("persist notification: %w", err)
	}

	event := dto.NotificationEvent{
		Type: dto.EventNotification,
		Data: SerializeNotification(notification),
	}
	if err := uc.Hub.Broadcast(ctx, ws.NotificationChannel(input.UserID), event, ""); err != nil {
		// The row is the durable record; the client catches up on its
		// next poll or reconnect.
		uc.Logger.WithError(err).Errorf("Failed to deliver notification %s live", notification.ID)
	}

	return notification, nil
}

func (uc *NotificationUsecaseImpl) GetByUser(ctx context.Context, userID string) ([]res.NotificationResponse, error) {
	notifications, err := uc.Store.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]res.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, SerializeNotification(&notifications[i]))
	}
	return responses, nil
}

func (uc *NotificationUsecaseImpl) MarkRead(ctx context.Context, id, userID string) (int64, error) {
	if _, err := uc.Store.FindByIDForUser(ctx, id, userID); err != nil {
		return 0, err
	}
	if err := uc.Store.MarkRead(ctx, id, userID); err != nil {
		return 0, err
	}

	unread, err := uc.Store.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}
	uc.pushControl(ctx, userID, dto.NotificationReadEvent{
		Type:           dto.EventNotificationRead,
		NotificationID: id,
		UnreadCount:    unread,
	})
	return unread, nil
}

func (uc *NotificationUsecaseImpl) MarkAllRead(ctx context.Context, userID string) error {
	if err := uc.Store.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	uc.pushControl(ctx, userID, dto.NotificationReadEvent{
		Type:        dto.EventAllRead,
		UnreadCount: 0,
	})
	return nil
}

func (uc *NotificationUsecaseImpl) ClearAll(ctx context.Context, userID string) error {
	if err := uc.Store.DeleteAllByUserID(ctx, userID); err != nil {
		return err
	}
	uc.pushControl(ctx, userID, dto.NotificationReadEvent{
		Type:        dto.EventAllCleared,
		UnreadCount: 0,
	})
	return nil
}

func (uc *NotificationUsecaseImpl) pushControl(ctx context.Context, userID string, event interface{}) {
	if err := uc.Hub.Broadcast(ctx, ws.NotificationChannel(userID), event, ""); err != nil {
		uc.Logger.WithError(err).Warnf("Failed to push control event to user %s", userID)
	}
}

func marshalData(data map[string]interface{}) string {
	if len(data) == 0 {
		return "{}"
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func SerializeNotification(notification *entity.Notification) res.NotificationResponse {
	response := res.NotificationResponse{
		ID:         notification.ID,
		Title:      notification.Title,
		Message:    notification.Message,
		Type:       string(notification.Type),
		Priority:   string(notification.Priority),
		IsRead:     notification.IsRead,
		ActionURL:  notification.ActionURL,
		ActionText: notification.ActionText,
		Data:       notification.Data,
		RefKind:    string(notification.RefKind),
		RefID:      notification.RefID,
		CreatedAt:  notification.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if notification.ReadAt != nil {
		response.ReadAt = notification.ReadAt.Format("2006-01-02 15:04:05")
	}
	return response
}

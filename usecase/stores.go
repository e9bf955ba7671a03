package usecase

import (
	"context"

	"freelance-hub-api/entity"
)

// Store seams between usecases and the persistence gateway. The
// repository package satisfies all of them; tests substitute in-memory
// fakes.

type RoomStore interface {
	FindDirectRoom(ctx context.Context, userAID, userBID string) (*entity.ChatRoom, error)
	FindRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error)
	CreateRoomWithParticipants(ctx context.Context, room *entity.ChatRoom, participants []entity.ChatParticipant) error
	FindAllByUserID(ctx context.Context, userID string) ([]entity.ChatRoom, error)
	IsParticipant(ctx context.Context, roomID, userID string) (bool, error)
}

type MessageStore interface {
	CreateMessage(ctx context.Context, message *entity.Message) error
	CreateMessages(ctx context.Context, roomID string, messages []entity.Message) error
	FindByRoomID(ctx context.Context, roomID string) ([]entity.Message, error)
	FindMessageByID(ctx context.Context, id string) (*entity.Message, error)
	MarkRead(ctx context.Context, messageID, userID string) error
	UnreadCount(ctx context.Context, roomID, userID string) (int64, error)
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *entity.Notification) error
	FindAllByUserID(ctx context.Context, userID string) ([]entity.Notification, error)
	FindByIDForUser(ctx context.Context, id, userID string) (*entity.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	DeleteAllByUserID(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type UserStore interface {
	FindUserByID(ctx context.Context, id string) (*entity.User, error)
}

// Broadcaster is the live-delivery side of the registry. *ws.Hub
// satisfies it.
type Broadcaster interface {
	Broadcast(ctx context.Context, channel string, event interface{}, excludeID string) error
}

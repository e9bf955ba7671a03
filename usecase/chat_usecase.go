package usecase

import (
	"context"

	"freelance-hub-api/dto/req"
	"freelance-hub-api/dto/res"
	"freelance-hub-api/entity"
)

type ChatUsecase interface {
	EnsureDirectRoom(ctx context.Context, userAID, userBID string) (*entity.ChatRoom, error)
	CreateRoom(ctx context.Context, creatorID string, payload *req.CreateRoomRequest) (*entity.ChatRoom, error)
	FindRoomByID(ctx context.Context, roomID string) (*entity.ChatRoom, error)
	GetRoomsByUser(ctx context.Context, userID string) ([]res.RoomResponse, error)
	GetMessagesByRoomID(ctx context.Context, userID, roomID string) ([]res.MessageResponse, error)

	// CheckRoomAccess answers "is user a participant of room" through a
	// short-TTL cache; a miss re-verifies against persisted membership.
	CheckRoomAccess(ctx context.Context, roomID, userID string) (bool, error)
}

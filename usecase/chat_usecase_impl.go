package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"freelance-hub-api/cache"
	"freelance-hub-api/dto/req"
	"freelance-hub-api/dto/res"
	"freelance-hub-api/entity"
)

const roomAccessTTL = 5 * time.Minute

type ChatUsecaseImpl struct {
	Rooms    RoomStore
	Messages MessageStore
	Cache    cache.Cache
	Logger   *logrus.Logger
}

func NewChatUsecase(rooms RoomStore, messages MessageStore, c cache.Cache, logger *logrus.Logger) *ChatUsecaseImpl {
	return &ChatUsecaseImpl{Rooms: rooms, Messages: messages, Cache: c, Logger: logger}
}

func (uc *ChatUsecaseImpl) EnsureDirectRoom(ctx context.Context, userAID, userBID string) (*entity.ChatRoom, error) {
	existing, err := uc.Rooms.FindDirectRoom(ctx, userAID, userBID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	// A direct room always has exactly these two participants.
	newRoom := &entity.ChatRoom{IsGroup: false}
	participants := []entity.ChatParticipant{
		{UserID: userAID},
		{UserID: userBID},
	}

	if err := uc.Rooms.CreateRoomWithParticipants(ctx, newRoom, participants); err != nil {
		return nil, err
	}
	return newRoom, nil
}

func (uc *ChatUsecaseImpl) CreateRoom(ctx context.Context, creatorID string, payload *req.CreateRoomRequest) (*entity.ChatRoom, error) {
	if !payload.IsGroup {
		if len(payload.ParticipantIDs) != 1 {
			return nil, fmt.Errorf("a direct room needs exactly one other participant")
		}
		return uc.EnsureDirectRoom(ctx, creatorID, payload.ParticipantIDs[0])
	}

	newRoom := &entity.ChatRoom{
		Name:    payload.Name,
		IsGroup: true,
	}
	if payload.JobID != "" {
		newRoom.JobID = &payload.JobID
	}
	if payload.ContractID != "" {
		newRoom.ContractID = &payload.ContractID
	}

	participants := make([]entity.ChatParticipant, 0, len(payload.ParticipantIDs)+1)
	participants = append(participants, entity.ChatParticipant{UserID: creatorID})
	for _, id := range payload.ParticipantIDs {
		if id == creatorID {
			continue
		}
		participants = append(participants, entity.ChatParticipant{UserID: id})
	}

	if err := uc.Rooms.CreateRoomWithParticipants(ctx, newRoom, participants); err != nil {
		return nil, err
	}

	// New membership set; any cached denials for these users are stale.
	for _, p := range participants {
		uc.invalidateRoomAccess(ctx, newRoom.ID, p.UserID)
	}
	return newRoom, nil
}

func (uc *ChatUsecaseImpl) FindRoomByID(ctx context.Context, roomID string) (*entity.ChatRoom, error) {
	return uc.Rooms.FindRoomByID(ctx, roomID)
}

func (uc *ChatUsecaseImpl) GetRoomsByUser(ctx context.Context, userID string) ([]res.RoomResponse, error) {
	rooms, err := uc.Rooms.FindAllByUserID(ctx, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to get rooms by user ID")
		return nil, err
	}

	var responses []res.RoomResponse
	for _, room := range rooms {
		response := res.RoomResponse{
			RoomID:      room.ID,
			DisplayName: room.Name,
			IsGroup:     room.IsGroup,
		}
		if room.JobID != nil {
			response.JobID = *room.JobID
		}
		if room.ContractID != nil {
			response.ContractID = *room.ContractID
		}

		for _, participant := range room.Participants {
			response.Participants = append(response.Participants, res.UserResponse{
				ID:     participant.User.ID,
				Name:   participant.User.Name,
				Email:  participant.User.Email,
				Avatar: participant.User.Avatar,
				Role:   string(participant.User.Role),
			})
			// A direct room is shown under the other participant's name.
			if response.DisplayName == "" && participant.UserID != userID {
				response.DisplayName = participant.User.Name
			}
		}

		if len(room.Messages) > 0 {
			last := room.Messages[0]
			response.LastMessage = last.Content
			response.LastMessageTime = last.CreatedAt.Format("2006-01-02 15:04:05")
		}

		if count, err := uc.Messages.UnreadCount(ctx, room.ID, userID); err == nil {
			response.UnreadCount = count
		}

		responses = append(responses, response)
	}

	return responses, nil
}

func (uc *ChatUsecaseImpl) GetMessagesByRoomID(ctx context.Context, userID, roomID string) ([]res.MessageResponse, error) {
	allowed, err := uc.CheckRoomAccess(ctx, roomID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify participant: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("user not authorized for this room")
	}

	messages, err := uc.Messages.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	var responses []res.MessageResponse
	for _, msg := range messages {
		responses = append(responses, SerializeMessage(&msg, &msg.Sender, userID))
	}
	return responses, nil
}

func (uc *ChatUsecaseImpl) CheckRoomAccess(ctx context.Context, roomID, userID string) (bool, error) {
	key := roomAccessKey(roomID, userID)
	if value, ok, err := uc.Cache.Get(ctx, key); err == nil && ok {
		return value == "1", nil
	}

	allowed, err := uc.Rooms.IsParticipant(ctx, roomID, userID)
	if err != nil {
		return false, err
	}

	value := "0"
	if allowed {
		value = "1"
	}
	if err := uc.Cache.Set(ctx, key, value, roomAccessTTL); err != nil {
		uc.Logger.WithError(err).Warn("Failed to cache room access")
	}
	return allowed, nil
}

func (uc *ChatUsecaseImpl) invalidateRoomAccess(ctx context.Context, roomID, userID string) {
	if err := uc.Cache.Delete(ctx, roomAccessKey(roomID, userID)); err != nil {
		uc.Logger.WithError(err).Warn("Failed to invalidate room access cache")
	}
}

func roomAccessKey(roomID, userID string) string {
	return fmt.Sprintf("room_access_%s_%s", roomID, userID)
}

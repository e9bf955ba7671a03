package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freelance-hub-api/entity"
)

type ChatRoomRepository struct {
	Repository[entity.ChatRoom]
}

func NewChatRoomRepository(db *gorm.DB) *ChatRoomRepository {
	return &ChatRoomRepository{Repository[entity.ChatRoom]{DB: db}}
}

// FindDirectRoom looks up the non-group room shared by exactly these two
// users, nil when none exists yet.
func (repository ChatRoomRepository) FindDirectRoom(ctx context.Context, userAID, userBID string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := repository.DB.WithContext(ctx).
		Joins("JOIN t_chat_participant cp1 ON cp1.room_id = t_chat_room.id").
		Joins("JOIN t_chat_participant cp2 ON cp2.room_id = t_chat_room.id").
		Where("cp1.user_id = ? AND cp2.user_id = ? AND t_chat_room.is_group = false", userAID, userBID).
		First(&room).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (repository ChatRoomRepository) FindRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := repository.DB.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (repository ChatRoomRepository) CreateRoomWithParticipants(ctx context.Context, room *entity.ChatRoom, participants []entity.ChatParticipant) error {
	return repository.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		for i := range participants {
			participants[i].RoomID = room.ID
		}
		return tx.Create(&participants).Error
	})
}

func (repository ChatRoomRepository) FindAllByUserID(ctx context.Context, userID string) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom

	err := repository.DB.WithContext(ctx).
		Model(&entity.ChatRoom{}).
		Joins("JOIN t_chat_participant cp ON cp.room_id = t_chat_room.id").
		Where("cp.user_id = ?", userID).
		Order("t_chat_room.updated_at DESC").
		Preload("Participants.User").
		Find(&rooms).Error

	if err != nil {
		return nil, err
	}

	// A limited Preload would cap the whole result set at one message, not
	// one per room, so the latest message is fetched room by room.
	for i := range rooms {
		var last entity.Message
		err := repository.DB.WithContext(ctx).
			Where("room_id = ?", rooms[i].ID).
			Order("created_at DESC, id DESC").
			First(&last).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		rooms[i].Messages = []entity.Message{last}
	}
	return rooms, nil
}

func (repository ChatRoomRepository) IsParticipant(ctx context.Context, roomID, userID string) (bool, error) {
	var count int64
	err := repository.DB.WithContext(ctx).
		Model(&entity.ChatParticipant{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

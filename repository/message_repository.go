package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freelance-hub-api/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{Repository[entity.Message]{DB: db}}
}

// CreateMessage persists one message and bumps the room's updated_at in
// the same transaction.
func (repository MessageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	return repository.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&entity.ChatRoom{}).
			Where("id = ?", message.RoomID).
			Update("updated_at", time.Now()).Error
	})
}

// CreateMessages bulk-inserts one flushed batch. All messages belong to
// the same room; the room row is touched once.
func (repository MessageRepository) CreateMessages(ctx context.Context, roomID string, messages []entity.Message) error {
	if len(messages) == 0 {
		return nil
	}
	return repository.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&messages).Error; err != nil {
			return err
		}
		return tx.Model(&entity.ChatRoom{}).
			Where("id = ?", roomID).
			Update("updated_at", time.Now()).Error
	})
}

func (repository MessageRepository) FindByRoomID(ctx context.Context, roomID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := repository.DB.WithContext(ctx).
		Preload("Sender").
		Preload("ReadBy").
		Where("room_id = ?", roomID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

func (repository MessageRepository) FindMessageByID(ctx context.Context, id string) (*entity.Message, error) {
	var message entity.Message
	err := repository.DB.WithContext(ctx).Where("id = ?", id).First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// MarkRead adds the user to the message's read-set. The unique index on
// (message_id, user_id) plus DoNothing makes repeated calls idempotent.
func (repository MessageRepository) MarkRead(ctx context.Context, messageID, userID string) error {
	read := entity.MessageRead{MessageID: messageID, UserID: userID}
	return repository.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&read).Error
}

// UnreadCount counts the room's messages sent by others that the user has
// not read.
func (repository MessageRepository) UnreadCount(ctx context.Context, roomID, userID string) (int64, error) {
	var count int64
	err := repository.DB.WithContext(ctx).
		Model(&entity.Message{}).
		Where("room_id = ? AND sender_id <> ?", roomID, userID).
		Where("id NOT IN (?)", repository.DB.Model(&entity.MessageRead{}).
			Select("message_id").
			Where("user_id = ?", userID)).
		Count(&count).Error
	return count, err
}

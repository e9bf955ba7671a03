package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"freelance-hub-api/entity"
)

type NotificationRepository struct {
	Repository[entity.Notification]
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{Repository[entity.Notification]{DB: db}}
}

func (repository NotificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	return repository.DB.WithContext(ctx).Create(notification).Error
}

func (repository NotificationRepository) FindAllByUserID(ctx context.Context, userID string) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := repository.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (repository NotificationRepository) FindByIDForUser(ctx context.Context, id, userID string) (*entity.Notification, error) {
	var notification entity.Notification
	err := repository.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkRead flips is_read once; an already-read notification is left
// untouched so read_at keeps its first value.
func (repository NotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	return repository.DB.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("id = ? AND user_id = ? AND is_read = false", id, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}

func (repository NotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return repository.DB.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}

func (repository NotificationRepository) DeleteAllByUserID(ctx context.Context, userID string) error {
	return repository.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.Notification{}).Error
}

func (repository NotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := repository.DB.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}

package entity

import (
	"time"

	"freelance-hub-api/enum"
)

type Message struct {
	BaseEntity
	RoomID   string           `json:"roomId" gorm:"type:varchar(255);index;not null"`
	SenderId string           `json:"senderId" gorm:"type:varchar(255);not null"`
	Content  string           `json:"content" gorm:"type:TEXT"`
	Type     enum.MessageType `json:"messageType" gorm:"type:varchar(10);default:'text'"`

	AttachmentURL  string `json:"attachmentUrl,omitempty" gorm:"type:text"`
	AttachmentName string `json:"attachmentName,omitempty" gorm:"type:varchar(255)"`
	AttachmentSize int64  `json:"attachmentSize,omitempty"`
	AttachmentType string `json:"attachmentType,omitempty" gorm:"type:varchar(100)"`

	IsEdited bool       `json:"isEdited" gorm:"default:false"`
	EditedAt *time.Time `json:"editedAt,omitempty" gorm:"null"`

	Room   ChatRoom      `json:"-" gorm:"foreignKey:RoomID;references:ID"`
	Sender User          `json:"-" gorm:"foreignKey:SenderId;references:ID"`
	ReadBy []MessageRead `json:"-" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
}

// MessageRead is one entry of a message's read-set. The sender never
// appears here; (message, user) is unique so marking read is idempotent.
type MessageRead struct {
	ID        string    `gorm:"primaryKey;type:varchar(255);default:gen_random_uuid()"`
	MessageID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_message_reader"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_message_reader"`
	ReadAt    time.Time `gorm:"autoCreateTime"`

	Message Message `gorm:"foreignKey:MessageID;references:ID;constraint:OnDelete:CASCADE;"`
	User    User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

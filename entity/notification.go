package entity

import (
	"time"

	"freelance-hub-api/enum"
)

type Notification struct {
	BaseEntity
	UserID  string `json:"userId" gorm:"type:varchar(255);index;not null"`
	Title   string `json:"title" gorm:"type:varchar(255)"`
	Message string `json:"message" gorm:"type:TEXT"`

	Type     enum.NotificationType `json:"notificationType" gorm:"type:varchar(20);default:'info'"`
	Priority enum.Priority         `json:"priority" gorm:"type:varchar(10);default:'medium'"`

	IsRead bool       `json:"isRead" gorm:"default:false"`
	ReadAt *time.Time `json:"readAt,omitempty" gorm:"null"`

	ActionURL  string `json:"actionUrl,omitempty" gorm:"type:varchar(500)"`
	ActionText string `json:"actionText,omitempty" gorm:"type:varchar(100)"`

	// Free-form JSON payload the client can use without another round-trip.
	Data string `json:"data" gorm:"type:TEXT;default:'{}'"`

	// (kind, id) pair pointing at the causing domain object, both empty
	// when the notification has no cause.
	RefKind enum.EntityKind `json:"refKind,omitempty" gorm:"type:varchar(20);null"`
	RefID   string          `json:"refId,omitempty" gorm:"type:varchar(255);null"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

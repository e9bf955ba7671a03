package entity

import "freelance-hub-api/enum"

type User struct {
	BaseEntity
	Name   string    `json:"name" gorm:"type:varchar(255)"`
	Email  string    `json:"email" gorm:"unique;type:varchar(100)"`
	Avatar string    `json:"avatar,omitempty" gorm:"type:text"`
	Role   enum.Role `json:"role" gorm:"type:varchar(10);default:'freelancer'"`
	AuthId string    `json:"authId" gorm:"type:varchar(255);unique"`

	Messages      []Message         `json:"-" gorm:"foreignKey:SenderId"`
	Participating []ChatParticipant `json:"-" gorm:"foreignKey:UserID"`
	Notifications []Notification    `json:"-" gorm:"foreignKey:UserID"`
}

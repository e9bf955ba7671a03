package entity

type ChatRoom struct {
	BaseEntity
	Name    string `json:"name" gorm:"type:varchar(100);null"`
	IsGroup bool   `json:"isGroup" gorm:"default:false"`

	// Opaque context refs owned by the jobs/contracts modules.
	JobID      *string `json:"jobId,omitempty" gorm:"type:varchar(255);null"`
	ContractID *string `json:"contractId,omitempty" gorm:"type:varchar(255);null"`

	Participants []ChatParticipant `json:"participants" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;"`
	Messages     []Message         `json:"messages" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;"`
}

type ChatParticipant struct {
	ID     string `gorm:"primaryKey;type:varchar(255);default:gen_random_uuid()"`
	RoomID string `gorm:"type:varchar(255);not null;uniqueIndex:idx_room_user"`
	UserID string `gorm:"type:varchar(255);not null;uniqueIndex:idx_room_user"`

	Room ChatRoom `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE;"`
	User User     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

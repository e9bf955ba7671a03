package res

type RoomResponse struct {
	RoomID          string         `json:"roomId"`
	DisplayName     string         `json:"displayName"`
	IsGroup         bool           `json:"isGroup"`
	Participants    []UserResponse `json:"participants"`
	LastMessage     string         `json:"lastMessage,omitempty"`
	LastMessageTime string         `json:"lastMessageTime,omitempty"`
	UnreadCount     int64          `json:"unreadCount"`
	JobID           string         `json:"jobId,omitempty"`
	ContractID      string         `json:"contractId,omitempty"`
}

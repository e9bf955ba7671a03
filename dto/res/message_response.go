package res

// MessageResponse is the fully serialized message sent both over REST and
// inside chat_message events.
type MessageResponse struct {
	MessageID    string `json:"messageId"`
	RoomID       string `json:"roomId"`
	Content      string `json:"content"`
	MessageType  string `json:"messageType"`
	SenderID     string `json:"senderId"`
	SenderName   string `json:"senderName"`
	SenderAvatar string `json:"senderAvatar,omitempty"`

	AttachmentURL  string `json:"attachmentUrl,omitempty"`
	AttachmentName string `json:"attachmentName,omitempty"`
	AttachmentSize int64  `json:"attachmentSize,omitempty"`

	IsEdited bool   `json:"isEdited"`
	IsRead   bool   `json:"isRead"`
	ReadBy   []string `json:"readBy,omitempty"`

	CreatedAt string `json:"createdAt"`
}

package req

// ChatFrame is one inbound JSON frame on a chat-room socket. An omitted
// Type is treated as "message".
type ChatFrame struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	FileURL   string `json:"file_url,omitempty"`
	IsTyping  bool   `json:"is_typing"`
	MessageID string `json:"message_id,omitempty"`
}

const (
	FrameTypeMessage  = "message"
	FrameTypeTyping   = "typing"
	FrameTypeMarkRead = "mark_read"
)

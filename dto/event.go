package dto

import "freelance-hub-api/dto/res"

// Outbound websocket event types.
const (
	EventChatMessage     = "chat_message"
	EventTypingIndicator = "typing_indicator"
	EventUserJoined      = "user_joined"
	EventUserLeft        = "user_left"
	EventError           = "error"

	EventNotification     = "notification"
	EventNotificationRead = "notification_read"
	EventAllRead          = "all_notifications_read"
	EventAllCleared       = "all_notifications_cleared"
	EventPong             = "pong"
)

type ChatMessageEvent struct {
	Type    string              `json:"type"`
	Message res.MessageResponse `json:"message"`
}

type TypingEvent struct {
	Type     string `json:"type"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsTyping bool   `json:"is_typing"`
}

type PresenceEvent struct {
	Type     string `json:"type"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type NotificationEvent struct {
	Type string                   `json:"type"`
	Data res.NotificationResponse `json:"data"`
}

type NotificationReadEvent struct {
	Type           string `json:"type"`
	NotificationID string `json:"notification_id,omitempty"`
	UnreadCount    int64  `json:"unread_count"`
}

type PongEvent struct {
	Type      string      `json:"type"`
	Timestamp interface{} `json:"timestamp"`
}

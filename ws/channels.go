package ws

import "fmt"

// Channel naming. One chat room and one user's notification stream each
// map to a single fan-out channel.
const (
	chatChannelPattern         = "chat_%s"
	notificationChannelPattern = "notifications_%s"
)

func ChatChannel(roomID string) string {
	return fmt.Sprintf(chatChannelPattern, roomID)
}

func NotificationChannel(userID string) string {
	return fmt.Sprintf(notificationChannelPattern, userID)
}

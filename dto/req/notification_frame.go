package req

// NotificationFrame is one inbound JSON frame on a notification socket.
// The channel is server-push; only ping is meaningful.
type NotificationFrame struct {
	Type      string      `json:"type"`
	Timestamp interface{} `json:"timestamp,omitempty"`
}

const FrameTypePing = "ping"

package res

type NotificationResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"notificationType"`
	Priority   string `json:"priority"`
	IsRead     bool   `json:"isRead"`
	ReadAt     string `json:"readAt,omitempty"`
	ActionURL  string `json:"actionUrl,omitempty"`
	ActionText string `json:"actionText,omitempty"`
	Data       string `json:"data"`
	RefKind    string `json:"refKind,omitempty"`
	RefID      string `json:"refId,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

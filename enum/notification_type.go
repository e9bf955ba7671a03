package enum

type NotificationType string

const (
	NotificationInfo     NotificationType = "info"
	NotificationSuccess  NotificationType = "success"
	NotificationWarning  NotificationType = "warning"
	NotificationError    NotificationType = "error"
	NotificationJob      NotificationType = "job"
	NotificationProposal NotificationType = "proposal"
	NotificationContract NotificationType = "contract"
	NotificationPayment  NotificationType = "payment"
	NotificationReview   NotificationType = "review"
	NotificationMessage  NotificationType = "message"
	NotificationSystem   NotificationType = "system"
)

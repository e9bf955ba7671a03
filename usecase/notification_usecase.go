package usecase

import (
	"context"

	"freelance-hub-api/dto"
	"freelance-hub-api/dto/res"
	"freelance-hub-api/entity"
	"freelance-hub-api/enum"
)

// NotifyInput is the generic dispatch contract: persist a notification
// for one addressee, then attempt live delivery.
type NotifyInput struct {
	UserID     string
	Title      string
	Message    string
	Type       enum.NotificationType
	Priority   enum.Priority
	ActionURL  string
	ActionText string
	Data       map[string]interface{}
	RefKind    enum.EntityKind
	RefID      string
}

// NotificationUsecase is the dispatch facade REST-side business logic
// calls into. Persistence always precedes delivery; a delivery fault
// never rolls back or fails the persisted row.
type NotificationUsecase interface {
	Notify(ctx context.Context, input NotifyInput) (*entity.Notification, error)

	GetByUser(ctx context.Context, userID string) ([]res.NotificationResponse, error)
	MarkRead(ctx context.Context, id, userID string) (int64, error)
	MarkAllRead(ctx context.Context, userID string) error
	ClearAll(ctx context.Context, userID string) error

	// Business-event wrappers, each a fixed template over Notify.
	NotifyProposalSubmitted(ctx context.Context, proposal dto.ProposalView) error
	NotifyProposalAccepted(ctx context.Context, proposal dto.ProposalView) error
	NotifyProposalRejected(ctx context.Context, proposal dto.ProposalView) error
	NotifyContractCreated(ctx context.Context, contract dto.ContractView) error
	NotifyContractStatusChanged(ctx context.Context, contract dto.ContractView, oldStatus, newStatus string) error
	NotifyContractDeadlineApproaching(ctx context.Context, contract dto.ContractView, daysRemaining int) error
	NotifyPaymentProcessed(ctx context.Context, payment dto.PaymentView) error
	NotifyPaymentFailed(ctx context.Context, payment dto.PaymentView) error
	NotifyReviewReceived(ctx context.Context, review dto.ReviewView) error
}

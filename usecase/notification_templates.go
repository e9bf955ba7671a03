package usecase

import (
	"context"
	"fmt"
	"time"

	"freelance-hub-api/dto"
	"freelance-hub-api/enum"
)

// Fixed notification templates for marketplace business events. Each is
// a thin wrapper over Notify with the copy, priority and reference
// baked in; callers only supply the view of the triggering object.

func (uc *NotificationUsecaseImpl) NotifyProposalSubmitted(ctx context.Context, proposal dto.ProposalView) error {
	_, err := uc.Notify(ctx, NotifyInput{
		UserID:     proposal.ClientID,
		Title:      "New Proposal Received",
		Message:    fmt.Sprintf("%s submitted a proposal for your job '%s'", proposal.FreelancerName, proposal.JobTitle),
		Type:       enum.NotificationProposal,
		Priority:   enum.PriorityHigh,
		ActionURL:  fmt.Sprintf("/jobs/%s/proposals", proposal.JobID),
		ActionText: "View Proposal",
		Data: map[string]interface{}{
			"proposal_id": proposal.ID,
			"job_id":      proposal.JobID,
			"amount":      proposal.Amount,
		},
		RefKind: enum.EntityKindProposal,
		RefID:   proposal.ID,
	})
	return err
}

func (uc *NotificationUsecaseImpl) NotifyProposalAccepted(ctx context.Context, proposal dto.ProposalView) error {
	_, err := uc.Notify(ctx, NotifyInput{
		UserID:     proposal.FreelancerID,
		Title:      "Proposal Accepted - Contract Created!",
		Message:    fmt.Sprintf("Your proposal for '%s' was accepted. A contract has been created.", proposal.JobTitle),
		Type:       enum.NotificationSuccess,
		Priority:   enum.PriorityUrgent,
		ActionURL:  "/contracts",
		ActionText: "View Contract",
		Data: map[string]interface{}{
			"proposal_id": proposal.ID,
			"job_id":      proposal.JobID,
		},
		RefKind: enum.EntityKindProposal,
		RefID:   proposal.ID,
	})
	return err
}

func (uc *NotificationUsecaseImpl) NotifyProposalRejected(ctx context.Context, proposal dto.ProposalView) error {
	_, err := uc.Notify(ctx, NotifyInput{
		UserID:     proposal.FreelancerID,
		Title:      "Proposal Update",
		Message:    fmt.Sprintf("Your proposal for '%s' was not selected this time.", proposal.JobTitle),
		Type:       enum.NotificationInfo,
		Priority:   enum.PriorityMedium,
		ActionURL:  "/jobs",
		ActionText: "Browse Jobs",
		Data: map[string]interface{}{
			"proposal_id": proposal.ID,
			"job_id":      proposal.JobID,
		},
		RefKind: enum.EntityKindProposal,
		RefID:   proposal.ID,
	})
	return err
}

func (uc *NotificationUsecaseImpl) NotifyContractCreated(ctx context.Context, contract dto.ContractView) error {
	parties := []struct {
		userID string
		other  string
	}{
		{contract.ClientID, contract.FreelancerName},
		{contract.FreelancerID, contract.ClientName},
	}
	for _, party := range parties {
		if _, err := uc.Notify(ctx, NotifyInput{
			UserID:     party.userID,
			Title:      "New Contract Created",
			Message:    fmt.Sprintf("A contract '%s' with %s has been created.", contract.Title, party.other),
			Type:       enum.NotificationContract,
			Priority:   enum.PriorityHigh,
			ActionURL:  fmt.Sprintf("/contracts/%s", contract.ID),
			ActionText: "View Contract",
			Data: map[string]interface{}{
				"contract_id": contract.ID,
				"amount":      contract.Amount,
			},
			RefKind: enum.EntityKindContract,
			RefID:   contract.ID,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *NotificationUsecaseImpl) NotifyContractStatusChanged(ctx context.Context, contract dto.ContractView, oldStatus, newStatus string) error {
	for _, userID := range contract.Party() {
		if _, err := uc.Notify(ctx, NotifyInput{
			UserID:     userID,
			Title:      "Contract Status Updated",
			Message:    fmt.Sprintf("Contract '%s' changed from %s to %s.", contract.Title, oldStatus, newStatus),
			Type:       enum.NotificationContract,
			Priority:   enum.PriorityMedium,
			ActionURL:  fmt.Sprintf("/contracts/%s", contract.ID),
			ActionText: "View Contract",
			Data: map[string]interface{}{
				"contract_id": contract.ID,
				"old_status":  oldStatus,
				"new_status":  newStatus,
			},
			RefKind: enum.EntityKindContract,
			RefID:   contract.ID,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *NotificationUsecaseImpl) NotifyContractDeadlineApproaching(ctx context.Context, contract dto.ContractView, daysRemaining int) error {
	priority := enum.PriorityMedium
	switch {
	case daysRemaining <= 1:
		priority = enum.PriorityUrgent
	case daysRemaining <= 3:
		priority = enum.PriorityHigh
	}

	data := map[string]interface{}{
		"contract_id":    contract.ID,
		"days_remaining": daysRemaining,
	}
	if contract.Deadline != nil {
		data["deadline"] = contract.Deadline.Format(time.RFC3339)
	}

	for _, userID := range contract.Party() {
		if _, err := uc.Notify(ctx, NotifyInput{
			UserID:     userID,
			Title:      "Contract Deadline Approaching",
			Message:    fmt.Sprintf("Contract '%s' is due in %d day(s).", contract.Title, daysRemaining),
			Type:       enum.NotificationWarning,
			Priority:   priority,
			ActionURL:  fmt.Sprintf("/contracts/%s", contract.ID),
			ActionText: "View Contract",
			Data:       data,
			RefKind:    enum.EntityKindContract,
			RefID:      contract.ID,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *NotificationUsecaseImpl) NotifyPaymentProcessed(ctx context.Context, payment dto.PaymentView) error {
	_, err := uc.Notify(ctx, NotifyInput{
		UserID:     payment.RecipientID,
		Title:      "Payment Processed Successfully",
		Message:    fmt.Sprintf("You received a payment of %s from %s.", payment.Amount, payment.PayerName),
		Type:       enum.NotificationPayment,
		Priority:   enum.PriorityHigh,
		ActionURL:  "/payments",
		ActionText: "View Payments",
		Data: map[string]interface{}{
			"payment_id": payment.ID,
			"amount":     payment.Amount,
		},
		RefKind: enum.EntityKindPayment,
		RefID:   payment.ID,
	})
	return err
}

func (uc *NotificationUsecaseImpl) NotifyPaymentFailed(ctx context.Context, payment dto.PaymentView) error {
	recipients := []struct {
		userID  string
		message string
	}{
		{payment.RecipientID, fmt.Sprintf("A payment of %s from %s could not be processed.", payment.Amount, payment.PayerName)},
		{payment.PayerID, fmt.Sprintf("Your payment of %s to %s failed. Please check your payment method.", payment.Amount, payment.RecipientName)},
	}
	for _, recipient := range recipients {
		if _, err := uc.Notify(ctx, NotifyInput{
			UserID:     recipient.userID,
			Title:      "Payment Failed",
			Message:    recipient.message,
			Type:       enum.NotificationError,
			Priority:   enum.PriorityUrgent,
			ActionURL:  "/payments",
			ActionText: "View Payments",
			Data: map[string]interface{}{
				"payment_id": payment.ID,
				"amount":     payment.Amount,
			},
			RefKind: enum.EntityKindPayment,
			RefID:   payment.ID,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *NotificationUsecaseImpl) NotifyReviewReceived(ctx context.Context, review dto.ReviewView) error {
	_, err := uc.Notify(ctx, NotifyInput{
		UserID:     review.ReviewedID,
		Title:      "New Review Received",
		Message:    fmt.Sprintf("%s left you a %d-star review.", review.ReviewerName, review.Rating),
		Type:       enum.NotificationReview,
		Priority:   enum.PriorityMedium,
		ActionURL:  "/reviews",
		ActionText: "View Reviews",
		Data: map[string]interface{}{
			"review_id": review.ID,
			"rating":    review.Rating,
		},
		RefKind: enum.EntityKindReview,
		RefID:   review.ID,
	})
	return err
}

package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"freelance-hub-api/dto"
	"freelance-hub-api/enum"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newNotificationFixture() (*NotificationUsecaseImpl, *fakeNotificationStore, *fakeBroadcaster, *trace) {
	tr := &trace{}
	store := &fakeNotificationStore{trace: tr}
	hub := &fakeBroadcaster{trace: tr}
	uc := NewNotificationUsecase(store, hub, quietLogger())
	return uc, store, hub, tr
}

func TestNotifyPersistsBeforeDelivery(t *testing.T) {
	ctx := context.Background()
	uc, store, hub, tr := newNotificationFixture()

	notification, err := uc.Notify(ctx, NotifyInput{
		UserID:  "user-1",
		Title:   "Payment Processed Successfully",
		Message: "You received a payment",
		Type:    enum.NotificationPayment,
	})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if notification.ID == "" {
		t.Fatal("persisted notification should carry an id")
	}
	if len(store.rows) != 1 {
		t.Fatalf("store rows = %d, want 1", len(store.rows))
	}
	if len(hub.events) != 1 {
		t.Fatalf("broadcasts = %d, want 1", len(hub.events))
	}
	if hub.events[0].channel != "notifications_user-1" {
		t.Fatalf("channel = %q, want notifications_user-1", hub.events[0].channel)
	}

	want := []string{"persist", "deliver"}
	if len(tr.steps) != 2 || tr.steps[0] != want[0] || tr.steps[1] != want[1] {
		t.Fatalf("step order = %v, want %v", tr.steps, want)
	}
}

func TestNotifyPersistFailureSkipsDelivery(t *testing.T) {
	ctx := context.Background()
	uc, store, hub, _ := newNotificationFixture()
	store.createErr = errors.New("db down")

	if _, err := uc.Notify(ctx, NotifyInput{UserID: "user-1", Title: "x"}); err == nil {
		t.Fatal("expected persist error to surface")
	}
	if len(hub.events) != 0 {
		t.Fatal("nothing should be delivered when persistence fails")
	}
}

func TestNotifyDeliveryFaultIsSwallowed(t *testing.T) {
	ctx := context.Background()
	uc, store, hub, _ := newNotificationFixture()
	hub.err = errors.New("no live consumers")

	notification, err := uc.Notify(ctx, NotifyInput{UserID: "user-1", Title: "x"})
	if err != nil {
		t.Fatalf("a delivery fault must not fail the call: %v", err)
	}
	if notification == nil || len(store.rows) != 1 {
		t.Fatal("the row must persist despite the delivery fault")
	}
}

func TestNotifyAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	uc, store, _, _ := newNotificationFixture()

	if _, err := uc.Notify(ctx, NotifyInput{UserID: "user-1", Message: "m"}); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	row := store.rows[0]
	if row.Title != "New Notification" {
		t.Fatalf("default title = %q", row.Title)
	}
	if row.Type != enum.NotificationInfo {
		t.Fatalf("default type = %q", row.Type)
	}
	if row.Priority != enum.PriorityMedium {
		t.Fatalf("default priority = %q", row.Priority)
	}
	if row.Data != "{}" {
		t.Fatalf("default data = %q", row.Data)
	}
}

func TestMarkReadPushesControlEvent(t *testing.T) {
	ctx := context.Background()
	uc, _, hub, _ := newNotificationFixture()

	first, _ := uc.Notify(ctx, NotifyInput{UserID: "user-1", Title: "a"})
	_, _ = uc.Notify(ctx, NotifyInput{UserID: "user-1", Title: "b"})
	hub.events = nil

	unread, err := uc.MarkRead(ctx, first.ID, "user-1")
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if unread != 1 {
		t.Fatalf("unread = %d, want 1", unread)
	}

	if len(hub.events) != 1 {
		t.Fatalf("broadcasts = %d, want 1", len(hub.events))
	}
	event, ok := hub.events[0].event.(dto.NotificationReadEvent)
	if !ok {
		t.Fatalf("event type %T", hub.events[0].event)
	}
	if event.Type != dto.EventNotificationRead || event.NotificationID != first.ID || event.UnreadCount != 1 {
		t.Fatalf("unexpected control event: %+v", event)
	}
}

func TestMarkReadRejectsForeignNotification(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := newNotificationFixture()

	owned, _ := uc.Notify(ctx, NotifyInput{UserID: "user-1", Title: "a"})

	if _, err := uc.MarkRead(ctx, owned.ID, "user-2"); err == nil {
		t.Fatal("another user's notification must not be markable")
	}
}

func TestMarkAllReadAndClearAllPushControlEvents(t *testing.T) {
	ctx := context.Background()
	uc, store, hub, _ := newNotificationFixture()

	_, _ = uc.Notify(ctx, NotifyInput{UserID: "user-1", Title: "a"})
	_, _ = uc.Notify(ctx, NotifyInput{UserID: "user-1", Title: "b"})
	hub.events = nil

	if err := uc.MarkAllRead(ctx, "user-1"); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if count, _ := store.CountUnread(ctx, "user-1"); count != 0 {
		t.Fatalf("unread after MarkAllRead = %d", count)
	}

	if err := uc.ClearAll(ctx, "user-1"); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if rows, _ := store.FindAllByUserID(ctx, "user-1"); len(rows) != 0 {
		t.Fatalf("rows after ClearAll = %d", len(rows))
	}

	if len(hub.events) != 2 {
		t.Fatalf("broadcasts = %d, want 2", len(hub.events))
	}
	got1 := hub.events[0].event.(dto.NotificationReadEvent).Type
	got2 := hub.events[1].event.(dto.NotificationReadEvent).Type
	if got1 != dto.EventAllRead || got2 != dto.EventAllCleared {
		t.Fatalf("control events = %q, %q", got1, got2)
	}
}

func TestProposalAcceptedTargetsFreelancer(t *testing.T) {
	ctx := context.Background()
	uc, store, _, _ := newNotificationFixture()

	err := uc.NotifyProposalAccepted(ctx, dto.ProposalView{
		ID:           "prop-1",
		JobTitle:     "Build a landing page",
		ClientID:     "client-1",
		FreelancerID: "freelancer-1",
	})
	if err != nil {
		t.Fatalf("NotifyProposalAccepted: %v", err)
	}

	if len(store.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(store.rows))
	}
	row := store.rows[0]
	if row.UserID != "freelancer-1" {
		t.Fatalf("addressee = %q, want freelancer-1", row.UserID)
	}
	if row.Priority != enum.PriorityUrgent {
		t.Fatalf("priority = %q, want urgent", row.Priority)
	}
	if row.RefKind != enum.EntityKindProposal || row.RefID != "prop-1" {
		t.Fatalf("ref = (%q, %q)", row.RefKind, row.RefID)
	}
}

func TestPaymentFailedNotifiesBothParties(t *testing.T) {
	ctx := context.Background()
	uc, store, _, _ := newNotificationFixture()

	err := uc.NotifyPaymentFailed(ctx, dto.PaymentView{
		ID:            "pay-1",
		Amount:        "150.00",
		PayerID:       "client-1",
		PayerName:     "Ada",
		RecipientID:   "freelancer-1",
		RecipientName: "Grace",
	})
	if err != nil {
		t.Fatalf("NotifyPaymentFailed: %v", err)
	}

	if len(store.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(store.rows))
	}
	addressees := []string{store.rows[0].UserID, store.rows[1].UserID}
	if !contains(addressees, "client-1") || !contains(addressees, "freelancer-1") {
		t.Fatalf("addressees = %v", addressees)
	}
	for _, row := range store.rows {
		if row.Priority != enum.PriorityUrgent {
			t.Fatalf("priority = %q, want urgent", row.Priority)
		}
	}
}

func TestDeadlinePriorityScalesWithUrgency(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		days int
		want enum.Priority
	}{
		{1, enum.PriorityUrgent},
		{3, enum.PriorityHigh},
		{7, enum.PriorityMedium},
	}

	for _, tc := range cases {
		uc, store, _, _ := newNotificationFixture()
		err := uc.NotifyContractDeadlineApproaching(ctx, dto.ContractView{
			ID:           "con-1",
			Title:        "Website build",
			ClientID:     "client-1",
			FreelancerID: "freelancer-1",
		}, tc.days)
		if err != nil {
			t.Fatalf("days=%d: %v", tc.days, err)
		}
		for _, row := range store.rows {
			if row.Priority != tc.want {
				t.Fatalf("days=%d: priority = %q, want %q", tc.days, row.Priority, tc.want)
			}
		}
	}
}

package handler

import (
	"fmt"
	"testing"
	"time"

	"freelance-hub-api/entity"
)

func newTestBatch(start time.Time) (*messageBatch, *time.Time) {
	current := start
	b := newMessageBatch()
	b.now = func() time.Time { return current }
	b.lastFlush = current
	return b, &current
}

func testMessage(i int) entity.Message {
	message := entity.Message{RoomID: "room-1", SenderId: "user-1", Content: fmt.Sprintf("msg %d", i)}
	message.ID = fmt.Sprintf("id-%d", i)
	return message
}

func TestBatchFlushesAtSizeThreshold(t *testing.T) {
	b, _ := newTestBatch(time.Now())

	for i := 0; i < batchFlushSize-1; i++ {
		b.Add(testMessage(i))
		if b.Due() {
			t.Fatalf("batch due at %d messages, threshold is %d", i+1, batchFlushSize)
		}
	}

	b.Add(testMessage(batchFlushSize - 1))
	if !b.Due() {
		t.Fatalf("batch not due at %d messages", batchFlushSize)
	}
}

func TestBatchFlushesAfterAge(t *testing.T) {
	b, now := newTestBatch(time.Now())

	b.Add(testMessage(0))
	if b.Due() {
		t.Fatal("fresh batch should not be due")
	}

	*now = now.Add(batchFlushAge)
	if !b.Due() {
		t.Fatal("aged batch should be due")
	}
}

func TestEmptyBatchNeverDue(t *testing.T) {
	b, now := newTestBatch(time.Now())

	*now = now.Add(time.Hour)
	if b.Due() {
		t.Fatal("an empty batch must never be due")
	}
}

func TestDrainPreservesCountAndOrder(t *testing.T) {
	b, _ := newTestBatch(time.Now())

	const n = 7
	for i := 0; i < n; i++ {
		b.Add(testMessage(i))
	}

	drained := b.Drain()
	if len(drained) != n {
		t.Fatalf("drained = %d, want %d", len(drained), n)
	}
	for i, message := range drained {
		if message.ID != fmt.Sprintf("id-%d", i) {
			t.Fatalf("message %d out of order: %s", i, message.ID)
		}
	}
	if b.Len() != 0 {
		t.Fatalf("buffer not reset, %d left", b.Len())
	}
}

func TestDrainResetsFlushClock(t *testing.T) {
	b, now := newTestBatch(time.Now())

	b.Add(testMessage(0))
	*now = now.Add(batchFlushAge)
	if !b.Due() {
		t.Fatal("aged batch should be due")
	}

	b.Drain()
	b.Add(testMessage(1))
	if b.Due() {
		t.Fatal("clock must restart after a drain")
	}
}

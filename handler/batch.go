package handler

import (
	"time"

	"freelance-hub-api/entity"
)

const (
	batchFlushSize = 10
	batchFlushAge  = 5 * time.Second
)

// messageBatch buffers persisted-later messages for one chat session.
// Messages are broadcast as they arrive; the buffer only delays the
// insert. Flush timing is checked on each receipt, not by a timer, so an
// idle session holds its buffer until the next message or disconnect.
type messageBatch struct {
	limit     int
	maxAge    time.Duration
	pending   []entity.Message
	lastFlush time.Time

	now func() time.Time
}

func newMessageBatch() *messageBatch {
	b := &messageBatch{
		limit:  batchFlushSize,
		maxAge: batchFlushAge,
		now:    time.Now,
	}
	b.lastFlush = b.now()
	return b
}

func (b *messageBatch) Add(message entity.Message) {
	b.pending = append(b.pending, message)
}

// Due reports whether the buffer should flush: size threshold reached or
// the flush interval elapsed.
func (b *messageBatch) Due() bool {
	if len(b.pending) == 0 {
		return false
	}
	return len(b.pending) >= b.limit || b.now().Sub(b.lastFlush) >= b.maxAge
}

// Drain returns the buffered messages and resets the buffer and clock.
func (b *messageBatch) Drain() []entity.Message {
	drained := b.pending
	b.pending = nil
	b.lastFlush = b.now()
	return drained
}

func (b *messageBatch) Len() int {
	return len(b.pending)
}

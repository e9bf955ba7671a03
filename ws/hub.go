package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Close codes handed to clients rejected at upgrade time.
const (
	CloseUnauthorized = 4001
	CloseForbidden    = 4003
	CloseRateLimited  = 4008
)

// Hub is the process-wide membership registry: channel name -> set of
// joined clients. A channel is one chat room or one user's notification
// stream. With a broker attached, broadcasts travel through it so clients
// on other workers receive them too; without one the hub is the
// single-worker degenerate case.
type Hub struct {
	log *logrus.Logger

	mu       sync.RWMutex
	channels map[string]map[*Client]struct{}

	broker Broker
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		log:      log,
		channels: make(map[string]map[*Client]struct{}),
	}
}

// SetBroker attaches the cross-process fan-out transport. Call before any
// client joins.
func (h *Hub) SetBroker(b Broker) {
	h.broker = b
}

// NewClient wraps an accepted connection and starts its write pump.
func (h *Hub) NewClient(conn Socket, userID, username string) *Client {
	c := newClient(h, conn, userID, username)
	go c.WritePump()
	return c
}

// Join adds the client to a channel. Idempotent.
func (h *Hub) Join(ctx context.Context, channel string, c *Client) error {
	h.mu.Lock()
	if c.gone {
		h.mu.Unlock()
		return fmt.Errorf("join %s: client already closed", channel)
	}
	set, ok := h.channels[channel]
	if !ok {
		set = make(map[*Client]struct{})
		h.channels[channel] = set
	}
	first := len(set) == 0
	set[c] = struct{}{}
	total := len(set)
	h.mu.Unlock()

	if first && h.broker != nil {
		if err := h.broker.Subscribe(ctx, channel); err != nil {
			return fmt.Errorf("subscribe %s: %w", channel, err)
		}
	}

	h.log.Infof("Client %s joined channel %s (total: %d)", c.ID, channel, total)
	return nil
}

// Leave removes the client from a channel. Idempotent; leaving a channel
// the client never joined is a no-op.
func (h *Hub) Leave(ctx context.Context, channel string, c *Client) {
	h.mu.Lock()
	set, ok := h.channels[channel]
	if ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.channels, channel)
		}
	}
	last := ok && len(set) == 0
	h.mu.Unlock()

	if last && h.broker != nil {
		if err := h.broker.Unsubscribe(ctx, channel); err != nil {
			h.log.Warnf("Failed to unsubscribe channel %s: %v", channel, err)
		}
	}
}

// Remove tears the client out of every channel and closes its send
// channel exactly once. Safe to call repeatedly.
func (h *Hub) Remove(ctx context.Context, c *Client) {
	h.mu.Lock()
	var emptied []string
	for channel, set := range h.channels {
		if _, ok := set[c]; !ok {
			continue
		}
		delete(set, c)
		if len(set) == 0 {
			delete(h.channels, channel)
			emptied = append(emptied, channel)
		}
	}
	c.gone = true
	h.mu.Unlock()

	for _, channel := range emptied {
		if h.broker != nil {
			if err := h.broker.Unsubscribe(ctx, channel); err != nil {
				h.log.Warnf("Failed to unsubscribe channel %s: %v", channel, err)
			}
		}
	}

	c.closeOnce.Do(func() {
		close(c.Send)
	})
}

// Broadcast fans an event out to every connection joined to the channel,
// skipping excludeID (the acting client, for typing/presence events).
// Delivery to a closing connection is best-effort.
func (h *Hub) Broadcast(ctx context.Context, channel string, event interface{}, excludeID string) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for %s: %w", channel, err)
	}

	if h.broker != nil {
		return h.broker.Publish(ctx, &Envelope{Channel: channel, Exclude: excludeID, Data: data})
	}

	h.deliver(channel, data, excludeID)
	return nil
}

// HandleEnvelope feeds a broker-delivered event into the local client
// sets. Wired as the broker's message handler.
func (h *Hub) HandleEnvelope(env *Envelope) {
	h.deliver(env.Channel, env.Data, env.Exclude)
}

func (h *Hub) deliver(channel string, data []byte, excludeID string) {
	h.mu.RLock()
	var stale []*Client
	for c := range h.channels[channel] {
		if c.ID == excludeID {
			continue
		}
		if !c.Enqueue(data) {
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.log.Warnf("Dropping slow client %s on channel %s", c.ID, channel)
	}
}

// Count reports how many local connections are joined to a channel.
func (h *Hub) Count(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channel])
}

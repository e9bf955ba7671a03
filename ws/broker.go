package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Envelope is one fanned-out event on the wire between workers. Exclude
// carries the origin client ID so self-exclusion survives process hops.
type Envelope struct {
	Channel string          `json:"channel"`
	Exclude string          `json:"exclude,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// Broker carries broadcasts between worker processes. A published
// envelope comes back through the handler on every subscribed worker,
// including the one that published it.
type Broker interface {
	Publish(ctx context.Context, env *Envelope) error
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
	Close() error
}

// RedisBroker implements Broker over Redis pub/sub, one subscription per
// active channel.
type RedisBroker struct {
	client  *redis.Client
	prefix  string
	handler func(*Envelope)
	log     *logrus.Logger

	mu            sync.Mutex
	subscriptions map[string]*redis.PubSub
}

func NewRedisBroker(client *redis.Client, prefix string, log *logrus.Logger, handler func(*Envelope)) *RedisBroker {
	return &RedisBroker{
		client:        client,
		prefix:        prefix,
		handler:       handler,
		log:           log,
		subscriptions: make(map[string]*redis.PubSub),
	}
}

func (b *RedisBroker) topic(channel string) string {
	return fmt.Sprintf("%s:%s", b.prefix, channel)
}

func (b *RedisBroker) Publish(ctx context.Context, env *Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	return b.client.Publish(ctx, b.topic(env.Channel), data).Err()
}

func (b *RedisBroker) Subscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscriptions[channel]; ok {
		return nil
	}

	sub := b.client.Subscribe(ctx, b.topic(channel))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}
	b.subscriptions[channel] = sub

	go b.readLoop(sub)
	return nil
}

func (b *RedisBroker) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.subscriptions[channel]
	if !ok {
		return nil
	}
	delete(b.subscriptions, channel)
	return sub.Close()
}

func (b *RedisBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for channel, sub := range b.subscriptions {
		_ = sub.Close()
		delete(b.subscriptions, channel)
	}
	return nil
}

func (b *RedisBroker) readLoop(sub *redis.PubSub) {
	for msg := range sub.Channel() {
		var env Envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			b.log.Warnf("Dropping malformed broker payload: %v", err)
			continue
		}
		b.handler(&env)
	}
}

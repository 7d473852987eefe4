package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrBrokerUnavailable is returned when the notifications Redis connection
// is unreachable or a call fails at the transport level.
var ErrBrokerUnavailable = errors.New("notification broker unavailable")

// ErrCorruptMessage is returned when a delivered payload cannot be decoded.
var ErrCorruptMessage = errors.New("corrupt notification message")

// ErrReceiverClosed is returned by [Receiver.Next] after Close, or when the
// subscription's delivery channel is torn down underneath it.
var ErrReceiverClosed = errors.New("notification receiver closed")

// Manager publishes and consumes notifications over Redis pub/sub. It must
// be constructed with a client selected onto the reserved notifications
// dataset (RedisConfig.NotificationOptions in the root package) so its state
// never shares an identifier space with session records.
type Manager struct {
	redis redis.UniversalClient
}

// New creates a notification [Manager] backed by the given Redis client.
func New(client redis.UniversalClient) *Manager {
	return &Manager{redis: client}
}

// Publish encodes payload and publishes it on channel. Delivery is
// fire-and-forget pub/sub: subscribers connected at publish time receive the
// message, nobody else ever will.
func (m *Manager) Publish(ctx context.Context, channel string, payload any) error {
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}

	if err := m.redis.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrokerUnavailable, err)
	}
	return nil
}

// Subscribe opens a subscription on the given channels. The returned
// [Receiver] must be closed when done.
func (m *Manager) Subscribe(ctx context.Context, channels ...string) (*Receiver, error) {
	pubsub := m.redis.Subscribe(ctx, channels...)

	// Block until the server confirms the subscription so a Publish issued
	// right after Subscribe returns is not lost.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: %v", ErrBrokerUnavailable, err)
	}

	return &Receiver{pubsub: pubsub, ch: pubsub.Channel()}, nil
}

// Ping reports whether the notifications connection is reachable.
func (m *Manager) Ping(ctx context.Context) error {
	if err := m.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrokerUnavailable, err)
	}
	return nil
}

// Message is one delivered notification.
type Message struct {
	Channel string
	Payload any
}

// Receiver consumes messages from one subscription.
type Receiver struct {
	pubsub *redis.PubSub
	ch     <-chan *redis.Message
}

// Next blocks until a message arrives, the context is done, or the receiver
// is closed.
func (r *Receiver) Next(ctx context.Context) (Message, error) {
	select {
	case <-ctx.Done():
		return Message{}, ctx.Err()
	case msg, ok := <-r.ch:
		if !ok {
			return Message{}, ErrReceiverClosed
		}

		var payload any
		if err := msgpack.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrCorruptMessage, err)
		}
		return Message{Channel: msg.Channel, Payload: payload}, nil
	}
}

// Close tears down the subscription.
func (r *Receiver) Close() error {
	return r.pubsub.Close()
}

package events

import "context"

// NoopPublisher discards all events. The server falls back to it when
// LENS_NATS_URL is unset, so handlers can publish unconditionally.
type NoopPublisher struct{}

func (n *NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}

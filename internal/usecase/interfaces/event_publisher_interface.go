package interfaces

import "context"

// IEventPublisher publishes booking lifecycle events. Publishing is
// best-effort; callers must tolerate a nil publisher and publish errors.
type IEventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

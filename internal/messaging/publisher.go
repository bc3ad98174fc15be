package messaging

import (
	"fmt"

	"github.com/jnharton/mudcore/internal/world"
)

// NatsPublisher publishes messages to individual player NATS subjects.
type NatsPublisher struct {
	server *NatsServer
}

// NewNatsPublisher wraps a NatsServer for per-player message delivery.
func NewNatsPublisher(server *NatsServer) *NatsPublisher {
	return &NatsPublisher{server: server}
}

// PublishToPlayer delivers data on the player's subject.
func (p *NatsPublisher) PublishToPlayer(ref world.Ref, data []byte) error {
	return p.server.Publish(PlayerSubject(ref), data)
}

// PlayerSubject returns the NATS subject a player session subscribes to.
func PlayerSubject(ref world.Ref) string {
	return fmt.Sprintf("player-%d", ref)
}

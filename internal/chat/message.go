package chat

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jnharton/mudcore/internal/world"
)

// seq orders messages across all channels for tie-breaking in the sink.
var seq atomic.Uint64

// Message is one immutable chat or system line. It is created at the point
// of the event, consumed exactly once by the delivery path, and never
// persisted.
type Message struct {
	// Id uniquely identifies the delivery.
	Id string

	// Sender is the originating player, world.Nowhere for system messages.
	Sender world.Ref

	Text string

	// Sent and Seq together order messages: Seq breaks same-instant ties
	// by arrival order.
	Sent time.Time
	Seq  uint64
}

// NewMessage creates a message from the given sender.
func NewMessage(sender world.Ref, text string) Message {
	return Message{
		Id:     uuid.New().String(),
		Sender: sender,
		Text:   text,
		Sent:   time.Now(),
		Seq:    seq.Add(1),
	}
}

// NewSystemMessage creates a message with no sender.
func NewSystemMessage(text string) Message {
	return NewMessage(world.Nowhere, text)
}

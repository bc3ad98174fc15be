package chat

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jnharton/mudcore/internal/world"
)

// shortNameLen is how much of a channel name forms its short name, and
// therefore the minimum channel name length.
const shortNameLen = 3

// Channel is one named chat channel: a FIFO queue of messages written by
// any producer, plus the registry of players subscribed to receive them.
// The queue and the listener set are guarded independently, so writers
// never contend with join/leave traffic.
type Channel struct {
	name      string
	shortName string

	chanColor string
	textColor string

	lmu       sync.RWMutex
	restrict  int
	listeners map[world.Ref]*world.Player

	qmu      sync.Mutex
	messages []Message
}

type ChannelOpt func(*Channel)

// WithRestriction sets the access level a player needs to receive the
// channel's messages.
func WithRestriction(level int) ChannelOpt {
	return func(c *Channel) {
		c.restrict = level
	}
}

// WithColors sets the display colors for the channel name and text.
func WithColors(chanColor, textColor string) ChannelOpt {
	return func(c *Channel) {
		c.chanColor = chanColor
		c.textColor = textColor
	}
}

// NewChannel creates a channel. The short name is derived from the first
// three characters of the name, lowercased, so names shorter than that are
// rejected. Channels are created once at server start and live for the
// process.
func NewChannel(name string, opts ...ChannelOpt) (*Channel, error) {
	if len(name) < shortNameLen {
		return nil, fmt.Errorf("channel name %q must be at least %d characters", name, shortNameLen)
	}

	c := &Channel{
		name:      name,
		shortName: strings.ToLower(name[:shortNameLen]),
		chanColor: "white",
		textColor: "white",
		listeners: make(map[world.Ref]*world.Player),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Channel) Name() string {
	return c.name
}

func (c *Channel) ShortName() string {
	return c.shortName
}

func (c *Channel) Colors() (chanColor, textColor string) {
	return c.chanColor, c.textColor
}

func (c *Channel) Restriction() int {
	c.lmu.RLock()
	defer c.lmu.RUnlock()
	return c.restrict
}

func (c *Channel) SetRestriction(level int) {
	c.lmu.Lock()
	defer c.lmu.Unlock()
	c.restrict = level
}

// Write appends a system message to the channel's queue. Writers never
// block and messages are never dropped.
func (c *Channel) Write(text string) {
	c.Post(NewSystemMessage(text))
}

// WriteFrom appends a message from the given sender.
func (c *Channel) WriteFrom(sender world.Ref, text string) {
	c.Post(NewMessage(sender, text))
}

// Post appends an already-built message, preserving its identity.
func (c *Channel) Post(m Message) {
	c.qmu.Lock()
	defer c.qmu.Unlock()
	c.messages = append(c.messages, m)
}

// NextMessage pops the oldest queued message. It never blocks; ok is false
// when the queue is empty.
func (c *Channel) NextMessage() (Message, bool) {
	c.qmu.Lock()
	defer c.qmu.Unlock()

	if len(c.messages) == 0 {
		return Message{}, false
	}
	m := c.messages[0]
	c.messages = c.messages[1:]
	return m, true
}

// AddListener subscribes a player, reporting whether membership changed.
// A player is a member at most once.
func (c *Channel) AddListener(p *world.Player) bool {
	c.lmu.Lock()
	defer c.lmu.Unlock()

	if _, ok := c.listeners[p.Id]; ok {
		return false
	}
	c.listeners[p.Id] = p
	return true
}

// RemoveListener unsubscribes a player, reporting whether membership
// changed.
func (c *Channel) RemoveListener(p *world.Player) bool {
	c.lmu.Lock()
	defer c.lmu.Unlock()

	if _, ok := c.listeners[p.Id]; !ok {
		return false
	}
	delete(c.listeners, p.Id)
	return true
}

// IsListener reports whether the player is subscribed. A player who has
// gagged the channel at a higher layer is still a listener here; gag state
// is the session layer's concern.
func (c *Channel) IsListener(p *world.Player) bool {
	c.lmu.RLock()
	defer c.lmu.RUnlock()

	_, ok := c.listeners[p.Id]
	return ok
}

// Listeners returns a snapshot of the subscribed players.
func (c *Channel) Listeners() []*world.Player {
	c.lmu.RLock()
	defer c.lmu.RUnlock()

	players := make([]*world.Player, 0, len(c.listeners))
	for _, p := range c.listeners {
		players = append(players, p)
	}
	return players
}

package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jnharton/mudcore/internal/world"
)

const (
	DefaultDrainInterval = 100 * time.Millisecond

	// displayWidth is the wrap column for outbound chat lines.
	displayWidth = 80
)

// Publisher delivers formatted bytes to one player's message subject.
type Publisher interface {
	PublishToPlayer(ref world.Ref, data []byte) error
}

// Dispatcher drains every channel's queue and fans each message out to the
// channel's listeners. It is the single consumer of the queues, so each
// message is delivered exactly once.
type Dispatcher struct {
	interval time.Duration
	pub      Publisher
	store    *world.Store
	channels []*Channel
	caser    cases.Caser
}

type DispatcherOpt func(*Dispatcher)

// WithDrainInterval sets how often the dispatcher sweeps the queues.
func WithDrainInterval(d time.Duration) DispatcherOpt {
	return func(disp *Dispatcher) {
		disp.interval = d
	}
}

func NewDispatcher(pub Publisher, store *world.Store, channels []*Channel, opts ...DispatcherOpt) *Dispatcher {
	d := &Dispatcher{
		interval: DefaultDrainInterval,
		pub:      pub,
		store:    store,
		channels: channels,
		caser:    cases.Title(language.English),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start runs the drain loop until the context is cancelled.
func (d *Dispatcher) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := d.Drain(ctx); err != nil {
				slog.WarnContext(ctx, "draining chat channels", "error", err)
			}
		}
	}
}

// Drain empties every channel queue in arrival order, delivering each
// message to the listeners that meet the channel's restriction level.
func (d *Dispatcher) Drain(ctx context.Context) error {
	var firstErr error
	for _, ch := range d.channels {
		for {
			m, ok := ch.NextMessage()
			if !ok {
				break
			}
			if err := d.deliver(ctx, ch, m); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (d *Dispatcher) deliver(ctx context.Context, ch *Channel, m Message) error {
	line := wordwrap.String(d.format(ctx, ch, m), displayWidth)
	data := []byte(line)

	restrict := ch.Restriction()
	var firstErr error
	for _, p := range ch.Listeners() {
		if p.Access < restrict {
			continue
		}
		if err := d.pub.PublishToPlayer(p.Id, data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (d *Dispatcher) format(ctx context.Context, ch *Channel, m Message) string {
	header := fmt.Sprintf("[%s]", d.caser.String(ch.Name()))
	if m.Sender == world.Nowhere {
		return fmt.Sprintf("%s %s", header, m.Text)
	}

	sender := fmt.Sprintf("#%d", m.Sender)
	o, err := d.store.Resolve(m.Sender)
	if err != nil {
		slog.WarnContext(ctx, "resolving message sender", "ref", int(m.Sender), "error", err)
	} else {
		sender = o.Base().Name
	}
	return fmt.Sprintf("%s %s: %s", header, sender, m.Text)
}

package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Clock    ClockConfig     `json:"clock"`
	Channels []ChannelConfig `json:"channels"`
	Nats     NatsConfig      `json:"nats"`
	Log      LogConfig       `json:"log"`
	World    WorldConfig     `json:"world"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Clock.validate())

	for i, ch := range c.Channels {
		if err := ch.validate(); err != nil {
			el.Add(fmt.Errorf("channel %d: %w", i, err))
		}
	}

	el.Add(c.Nats.validate())
	el.Add(c.Log.validate())
	el.Add(c.World.validate())

	return el.Err()
}

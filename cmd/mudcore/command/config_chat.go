package command

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/jnharton/mudcore/internal/chat"
)

type ChannelConfig struct {
	Name      string `json:"name"`
	Restrict  int    `json:"restrict"`
	ChanColor string `json:"chan_color,omitempty"`
	TextColor string `json:"text_color,omitempty"`
}

func (c *ChannelConfig) validate() error {
	el := errors.NewErrorList()

	if len(c.Name) < 3 {
		el.Add(fmt.Errorf("channel name must be at least 3 characters"))
	}
	if c.Restrict < 0 {
		el.Add(fmt.Errorf("restrict cannot be negative"))
	}

	return el.Err()
}

func (c *ChannelConfig) BuildChannel() (*chat.Channel, error) {
	opts := []chat.ChannelOpt{
		chat.WithRestriction(c.Restrict),
	}
	if c.ChanColor != "" || c.TextColor != "" {
		chanColor, textColor := c.ChanColor, c.TextColor
		if chanColor == "" {
			chanColor = "white"
		}
		if textColor == "" {
			textColor = "white"
		}
		opts = append(opts, chat.WithColors(chanColor, textColor))
	}

	return chat.NewChannel(c.Name, opts...)
}

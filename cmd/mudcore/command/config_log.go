package command

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/jnharton/mudcore/internal/logging"
)

type LogConfig struct {
	Dir        string `json:"dir"`
	Prefix     string `json:"prefix,omitempty"`
	MaxLines   int    `json:"max_lines,omitempty"`
	BufferSize int    `json:"buffer_size,omitempty"`
}

func (c *LogConfig) validate() error {
	el := errors.NewErrorList()

	if c.Dir == "" {
		el.Add(fmt.Errorf("log dir is required"))
	}
	if c.MaxLines < 0 {
		el.Add(fmt.Errorf("max_lines cannot be negative"))
	}
	if c.BufferSize < 0 {
		el.Add(fmt.Errorf("buffer_size cannot be negative"))
	}

	return el.Err()
}

func (c *LogConfig) BuildLog() (*logging.Log, error) {
	var opts []logging.Option
	if c.MaxLines > 0 {
		opts = append(opts, logging.WithMaxLines(c.MaxLines))
	}
	if c.BufferSize > 0 {
		opts = append(opts, logging.WithBuffer(c.BufferSize))
	}

	return logging.NewLog(c.Dir, c.Prefix, opts...)
}

package command

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/jnharton/mudcore/internal/world"
)

type WorldConfig struct {
	// DbPath is the flat record database holding the world's entities.
	DbPath string `json:"db_path"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.DbPath == "" {
		el.Add(fmt.Errorf("db_path is required"))
	}

	return el.Err()
}

func (c *WorldConfig) BuildStore() (*world.Store, error) {
	store, err := world.NewDatabase(c.DbPath).Load()
	if err != nil {
		return nil, fmt.Errorf("loading world database: %w", err)
	}
	return store, nil
}

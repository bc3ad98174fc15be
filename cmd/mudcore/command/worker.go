package command

import (
	"fmt"

	service "github.com/pixil98/go-service"

	"github.com/jnharton/mudcore/internal/chat"
	"github.com/jnharton/mudcore/internal/messaging"
	"github.com/jnharton/mudcore/internal/server"
)

// systemChannelName is the always-present channel carrying clock
// announcements and other server-originated messages.
const systemChannelName = "system"

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Create the embedded nats server
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Load the world database
	store, err := cfg.World.BuildStore()
	if err != nil {
		return nil, fmt.Errorf("creating world store: %w", err)
	}

	// Create the game log
	gameLog, err := cfg.Log.BuildLog()
	if err != nil {
		return nil, fmt.Errorf("creating game log: %w", err)
	}

	// The system channel always exists; configured channels follow it.
	systemCh, err := chat.NewChannel(systemChannelName)
	if err != nil {
		return nil, fmt.Errorf("creating system channel: %w", err)
	}
	channels := []*chat.Channel{systemCh}
	for i, cc := range cfg.Channels {
		ch, err := cc.BuildChannel()
		if err != nil {
			return nil, fmt.Errorf("creating channel %d: %w", i, err)
		}
		channels = append(channels, ch)
	}

	// The server supplies the clock's hooks and message sink
	srv := server.NewServer(store, systemCh, gameLog)

	worldClock, err := cfg.Clock.BuildClock(srv, srv)
	if err != nil {
		return nil, fmt.Errorf("creating world clock: %w", err)
	}

	dispatcher := chat.NewDispatcher(messaging.NewNatsPublisher(natsServer), store, channels)

	return service.WorkerList{
		"nats":  natsServer,
		"clock": worldClock,
		"chat":  dispatcher,
	}, nil
}

package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jnharton/mudcore/internal/chat"
	"github.com/jnharton/mudcore/internal/logging"
	"github.com/jnharton/mudcore/internal/world"
)

// Server supplies the world clock's hooks and message sink, backed by the
// real object store and the system chat channel. Hooks run on the clock's
// tick goroutine; everything they touch is internally synchronized.
type Server struct {
	store  *world.Store
	system *chat.Channel
	log    *logging.Log

	mu     sync.Mutex
	moves  []pendingMove
	timers []*timer
}

type pendingMove struct {
	player world.Ref
	exit   world.Ref
}

type timer struct {
	name      string
	owner     world.Ref
	remaining int
}

func NewServer(store *world.Store, system *chat.Channel, log *logging.Log) *Server {
	return &Server{
		store:  store,
		system: system,
		log:    log,
	}
}

// QueueMove schedules a player's traversal through an exit. Moves are
// processed in order on the next minute rollover.
func (s *Server) QueueMove(player, exit world.Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moves = append(s.moves, pendingMove{player: player, exit: exit})
}

// AddTimer registers a countdown that expires after the given number of
// game seconds.
func (s *Server) AddTimer(name string, owner world.Ref, seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers = append(s.timers, &timer{name: name, owner: owner, remaining: seconds})
}

// CheckTimers runs every clock tick: each registered timer loses one game
// second, and expired timers announce themselves and are dropped.
func (s *Server) CheckTimers() {
	s.mu.Lock()
	var expired []*timer
	remaining := s.timers[:0]
	for _, t := range s.timers {
		t.remaining--
		if t.remaining <= 0 {
			expired = append(expired, t)
			continue
		}
		remaining = append(remaining, t)
	}
	s.timers = remaining
	s.mu.Unlock()

	for _, t := range expired {
		s.system.WriteFrom(t.owner, fmt.Sprintf("%s wears off.", t.name))
	}
}

// HandleMovement runs on every minute rollover and processes the queued
// traversals in arrival order.
func (s *Server) HandleMovement() {
	s.mu.Lock()
	moves := s.moves
	s.moves = nil
	s.mu.Unlock()

	for _, mv := range moves {
		s.processMove(mv)
	}
}

func (s *Server) processMove(mv pendingMove) {
	obj, err := s.store.Resolve(mv.player)
	if err != nil {
		slog.Warn("resolving mover", "ref", int(mv.player), "error", err)
		return
	}
	player, ok := obj.(*world.Player)
	if !ok {
		slog.Warn("mover is not a player", "ref", int(mv.player), "kind", obj.Kind().String())
		return
	}

	obj, err = s.store.Resolve(mv.exit)
	if err != nil {
		slog.Warn("resolving exit", "ref", int(mv.exit), "error", err)
		return
	}
	exit, ok := obj.(*world.Exit)
	if !ok {
		slog.Warn("traversal target is not an exit", "ref", int(mv.exit), "kind", obj.Kind().String())
		return
	}

	tctx := world.TraversalContext{
		Actor: player.Name,
		Exit:  exit.Name,
	}

	if exit.IsLocked() {
		text := fmt.Sprintf("The %s is locked.", exit.Name)
		if exit.FailMsg != "" {
			if rendered, err := exit.RenderFail(tctx); err == nil {
				text = rendered
			} else {
				slog.Warn("rendering fail message", "exit", int(exit.Id), "error", err)
			}
		}
		s.system.WriteFrom(player.Id, text)
		return
	}

	dest, err := s.store.Resolve(exit.Destination)
	if err != nil {
		// A dangling destination is a data-integrity error, not a crash:
		// report it and leave the player where they are.
		slog.Error("exit destination", "exit", int(exit.Id), "error", err)
		return
	}
	tctx.Destination = dest.Base().Name

	if err := s.store.SetLocation(player.Id, exit.Destination); err != nil {
		slog.Error("moving player", "player", int(player.Id), "error", err)
		return
	}

	text := fmt.Sprintf("%s heads to %s.", player.Name, dest.Base().Name)
	if exit.SuccMsg != "" {
		if rendered, err := exit.RenderSuccess(tctx); err == nil {
			text = rendered
		} else {
			slog.Warn("rendering success message", "exit", int(exit.Id), "error", err)
		}
	}
	s.system.WriteFrom(player.Id, text)

	if err := s.log.WritePlayer(player.Name, int(exit.Destination), "arrived"); err != nil {
		slog.Warn("writing game log", "error", err)
	}
}

// OnHourIncrement runs on every hour rollover.
func (s *Server) OnHourIncrement() {
	s.Debug("the hour advances")
}

// OnDayIncrement runs on every day rollover.
func (s *Server) OnDayIncrement() {
	s.Debug("a new day begins")
}

// AddMessage posts a clock announcement to the system channel.
func (s *Server) AddMessage(m chat.Message) {
	s.system.Post(m)
}

// Debug writes a line to the game log. Log failures never propagate: a
// stalled calendar would be worse than a lost debug line.
func (s *Server) Debug(text string) {
	if err := s.log.Writeln(text); err != nil {
		slog.Warn("writing game log", "error", err)
	}
}

package service

import (
	"sync"
	"time"

	"github.com/beka-birhanu/snowmaze/game"
	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/google/uuid"
)

// session is one running chase. The tick goroutine and the request handlers share
// the simulation under the session lock.
type session struct {
	id       uuid.UUID
	playerID uuid.UUID
	username string
	sim      *game.Simulation
	input    maze.Direction // held until the hero's next movement turn
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	sync.Mutex
}

func newSession(playerID uuid.UUID, username string, sim *game.Simulation) *session {
	return &session{
		id:       uuid.New(),
		playerID: playerID,
		username: username,
		sim:      sim,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// run ticks the simulation every interval until it ends or the session is halted.
// onEnd is called from the tick goroutine once a terminal state is reached.
func (s *session) run(interval time.Duration, onEnd func(*session, game.State, int)) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if state, ticks := s.tick(); state.Terminal() {
				onEnd(s, state, ticks)
				return
			}
		}
	}
}

func (s *session) tick() (game.State, int) {
	s.Lock()
	defer s.Unlock()
	state := s.sim.Tick(s.input)
	if s.sim.HeroTurn() {
		s.input = maze.NoDirection
	}
	return state, s.sim.Ticks()
}

// halt stops the tick goroutine and waits for it to return.
func (s *session) halt() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

func (s *session) setInput(dir maze.Direction) bool {
	s.Lock()
	defer s.Unlock()
	if s.sim.State().Terminal() {
		return false
	}
	s.input = dir
	return true
}

func (s *session) apply(a game.Action) (bool, error) {
	s.Lock()
	defer s.Unlock()
	return s.sim.Apply(a)
}

func (s *session) snapshot() game.Snapshot {
	s.Lock()
	defer s.Unlock()
	return s.sim.Snapshot()
}

func (s *session) state() game.State {
	s.Lock()
	defer s.Unlock()
	return s.sim.State()
}

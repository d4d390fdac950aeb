package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/snowmaze/config"
	"github.com/beka-birhanu/snowmaze/game"
	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/beka-birhanu/snowmaze/service/i"
	"github.com/google/uuid"
)

const resultTimeout = 2 * time.Second

var (
	ErrSessionNotFound  = errors.New("no such game session")
	ErrNotSessionOwner  = errors.New("game session belongs to another player")
	ErrSessionRunning   = errors.New("game session is still running")
	ErrSessionFinished  = errors.New("game session has ended")
	ErrMissingComponent = errors.New("missing session manager dependency")
)

type GameSessionManager struct {
	game            config.GameConfig
	userRepo        i.UserRepo
	leaderboard     i.Leaderboard
	logger          i.Logger
	newGame         func(game.Setup) (*game.Simulation, error)
	seed            func() int64
	sessions        map[uuid.UUID]*session
	playerToSession map[uuid.UUID]uuid.UUID
	wg              sync.WaitGroup
	sync.RWMutex
}

type Config struct {
	Game        config.GameConfig
	UserRepo    i.UserRepo
	Leaderboard i.Leaderboard
	Logger      i.Logger
	GameFactory func(game.Setup) (*game.Simulation, error) // defaults to game.NewGame
	Seed        func() int64                               // used when the config has no fixed seed
}

func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.UserRepo == nil || c.Leaderboard == nil || c.Logger == nil {
		return nil, ErrMissingComponent
	}
	if err := c.Game.Validate(); err != nil {
		return nil, err
	}

	gsm := &GameSessionManager{
		game:            c.Game,
		userRepo:        c.UserRepo,
		leaderboard:     c.Leaderboard,
		logger:          c.Logger,
		newGame:         c.GameFactory,
		seed:            c.Seed,
		sessions:        make(map[uuid.UUID]*session),
		playerToSession: make(map[uuid.UUID]uuid.UUID),
	}
	if gsm.newGame == nil {
		gsm.newGame = game.NewGame
	}
	if gsm.seed == nil {
		gsm.seed = func() int64 { return time.Now().UnixNano() }
	}
	return gsm, nil
}

func (g *GameSessionManager) NewSession(playerID uuid.UUID) (uuid.UUID, error) {
	user, err := g.userRepo.ByID(playerID)
	if err != nil {
		return uuid.Nil, err
	}

	seed := g.game.Maze.Seed
	if seed == 0 {
		seed = g.seed()
	}
	sim, err := g.newGame(g.game.Setup(seed))
	if err != nil {
		g.logger.Error(fmt.Sprintf("creating game for player %s: %s", playerID, err))
		return uuid.Nil, err
	}

	s := newSession(playerID, user.Username, sim)
	previous := g.saveSession(s)
	if previous != nil {
		previous.halt()
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		s.run(g.game.TickInterval(), g.finish)
	}()

	g.logger.Info(fmt.Sprintf("started game %s for player %s (seed %d)", s.id, playerID, seed))
	return s.id, nil
}

func (g *GameSessionManager) Input(playerID, sessionID uuid.UUID, dir maze.Direction) error {
	s, err := g.owned(playerID, sessionID)
	if err != nil {
		return err
	}
	if !s.setInput(dir) {
		return ErrSessionFinished
	}
	return nil
}

func (g *GameSessionManager) Action(playerID, sessionID uuid.UUID, action game.Action) (bool, error) {
	s, err := g.owned(playerID, sessionID)
	if err != nil {
		return false, err
	}
	if s.state().Terminal() {
		return false, ErrSessionFinished
	}
	return s.apply(action)
}

func (g *GameSessionManager) Snapshot(playerID, sessionID uuid.UUID) (game.Snapshot, error) {
	s, err := g.owned(playerID, sessionID)
	if err != nil {
		return game.Snapshot{}, err
	}
	return s.snapshot(), nil
}

func (g *GameSessionManager) Restart(playerID, sessionID uuid.UUID) (uuid.UUID, error) {
	s, err := g.owned(playerID, sessionID)
	if err != nil {
		return uuid.Nil, err
	}
	if !s.state().Terminal() {
		return uuid.Nil, ErrSessionRunning
	}
	return g.NewSession(playerID)
}

// StopAll halts every running game and waits for the tick goroutines to finish.
func (g *GameSessionManager) StopAll() {
	g.Lock()
	sessions := make([]*session, 0, len(g.sessions))
	for _, s := range g.sessions {
		sessions = append(sessions, s)
	}
	g.sessions = make(map[uuid.UUID]*session)
	g.playerToSession = make(map[uuid.UUID]uuid.UUID)
	g.Unlock()

	for _, s := range sessions {
		s.halt()
	}
	g.wg.Wait()
	g.logger.Info(fmt.Sprintf("stopped %d game sessions", len(sessions)))
}

// saveSession registers s as the player's only session and returns the one it replaces.
func (g *GameSessionManager) saveSession(s *session) *session {
	g.Lock()
	defer g.Unlock()

	var previous *session
	if oldID, ok := g.playerToSession[s.playerID]; ok {
		previous = g.sessions[oldID]
		delete(g.sessions, oldID)
	}
	g.sessions[s.id] = s
	g.playerToSession[s.playerID] = s.id
	return previous
}

func (g *GameSessionManager) owned(playerID, sessionID uuid.UUID) (*session, error) {
	g.RLock()
	defer g.RUnlock()
	s, ok := g.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.playerID != playerID {
		return nil, ErrNotSessionOwner
	}
	return s, nil
}

// finish stores the result of a game that reached a terminal state.
func (g *GameSessionManager) finish(s *session, state game.State, ticks int) {
	escaped := state == game.HeroEscaped
	g.logger.Info(fmt.Sprintf("game %s for player %s %s after %d ticks", s.id, s.playerID, state, ticks))

	if err := g.userRepo.RecordResult(s.playerID, escaped, ticks); err != nil {
		g.logger.Error(fmt.Sprintf("recording result for player %s: %s", s.playerID, err))
	}
	if !escaped {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), resultTimeout)
	defer cancel()
	best, err := g.leaderboard.Submit(ctx, s.username, ticks)
	if err != nil {
		g.logger.Error(fmt.Sprintf("submitting escape for %s: %s", s.username, err))
		return
	}
	if best {
		g.logger.Info(fmt.Sprintf("new best escape for %s: %d ticks", s.username, ticks))
	}
}

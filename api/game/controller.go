package gameapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/snowmaze/api/identity"
	"github.com/beka-birhanu/snowmaze/game"
	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/beka-birhanu/snowmaze/service"
	"github.com/beka-birhanu/snowmaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
	leaderboardTimeout      = time.Second
)

// GameController serves game sessions to authenticated players and the public leaderboard.
type GameController struct {
	gameSessionManager i.GameSessionManager
	leaderboard        i.Leaderboard
}

// NewGameController initializes a GameController.
func NewGameController(gsm i.GameSessionManager, lb i.Leaderboard) (*GameController, error) {
	if gsm == nil || lb == nil {
		return nil, errors.New("game controller needs a session manager and a leaderboard")
	}
	return &GameController{
		gameSessionManager: gsm,
		leaderboard:        lb,
	}, nil
}

// RegisterPublic registers public routes.
func (gc *GameController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", gc.top)
}

// RegisterProtected registers protected routes.
func (gc *GameController) RegisterProtected(route *gin.RouterGroup) {
	games := route.Group("/games")
	{
		games.POST("", gc.create)
		games.GET("/:ID", gc.state)
		games.POST("/:ID/input", gc.input)
		games.POST("/:ID/action", gc.action)
		games.POST("/:ID/restart", gc.restart)
	}
}

// create starts a new game for the caller.
func (gc *GameController) create(ctx *gin.Context) {
	playerID, err := identity.PlayerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := gc.gameSessionManager.NewSession(playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating game"})
		return
	}
	ctx.JSON(http.StatusCreated, &GameCreatedResponse{ID: id.String()})
}

// state returns the current snapshot of a game.
func (gc *GameController) state(ctx *gin.Context) {
	playerID, sessionID, ok := gc.ids(ctx)
	if !ok {
		return
	}

	snap, err := gc.gameSessionManager.Snapshot(playerID, sessionID)
	if err != nil {
		writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toGameState(sessionID.String(), snap))
}

// input sets the hero's next direction.
func (gc *GameController) input(ctx *gin.Context) {
	playerID, sessionID, ok := gc.ids(ctx)
	if !ok {
		return
	}

	var request InputRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dir, err := maze.ParseDirection(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.gameSessionManager.Input(playerID, sessionID, dir); err != nil {
		writeSessionError(ctx, err)
		return
	}
	ctx.Status(http.StatusAccepted)
}

// action picks up or uses the ice pick.
func (gc *GameController) action(ctx *gin.Context) {
	playerID, sessionID, ok := gc.ids(ctx)
	if !ok {
		return
	}

	var request ActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := game.ParseAction(request.Action)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applied, err := gc.gameSessionManager.Action(playerID, sessionID, a)
	if err != nil {
		writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &ActionResponse{Applied: applied})
}

// restart replaces a finished game with a new maze.
func (gc *GameController) restart(ctx *gin.Context) {
	playerID, sessionID, ok := gc.ids(ctx)
	if !ok {
		return
	}

	id, err := gc.gameSessionManager.Restart(playerID, sessionID)
	if err != nil {
		writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, &GameCreatedResponse{ID: id.String()})
}

// top lists the fastest escapes.
func (gc *GameController) top(ctx *gin.Context) {
	limit := defaultLeaderboardLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxLeaderboardLimit {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, leaderboardTimeout)
	defer cancel()
	entries, err := gc.leaderboard.Top(timeoutCtx, int64(limit))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}
	total, err := gc.leaderboard.Count(timeoutCtx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	response := &LeaderboardResponse{
		Total:   total,
		Entries: make([]LeaderboardEntryResponse, 0, len(entries)),
	}
	for rank, e := range entries {
		response.Entries = append(response.Entries, LeaderboardEntryResponse{Rank: rank + 1, Username: e.Username, Ticks: e.Ticks})
	}
	ctx.JSON(http.StatusOK, response)
}

// ids extracts the caller and the game from the request, writing the error response itself.
func (gc *GameController) ids(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	playerID, err := identity.PlayerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return uuid.Nil, uuid.Nil, false
	}
	return playerID, sessionID, true
}

func writeSessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotSessionOwner):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionRunning), errors.Is(err, service.ErrSessionFinished):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrUnknownAction):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	}
}

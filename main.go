package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/snowmaze/api"
	gameapi "github.com/beka-birhanu/snowmaze/api/game"
	api_i "github.com/beka-birhanu/snowmaze/api/i"
	"github.com/beka-birhanu/snowmaze/api/identity"
	"github.com/beka-birhanu/snowmaze/config"
	"github.com/beka-birhanu/snowmaze/infrastruture/leaderboard"
	logger "github.com/beka-birhanu/snowmaze/infrastruture/log"
	"github.com/beka-birhanu/snowmaze/infrastruture/repo"
	"github.com/beka-birhanu/snowmaze/infrastruture/token"
	"github.com/beka-birhanu/snowmaze/service"
	"github.com/beka-birhanu/snowmaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	envs               config.Config
	gameConfig         config.GameConfig
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	userRepo           *repo.UserRepo
	board              i.Leaderboard
	gameSessionManager *service.GameSessionManager
	gameController     api_i.Controller
	jwtTokenizer       i.Tokenizer
	authService        i.Authenticator
	authController     api_i.Controller
	router             *api.Router
	appLogger          *logger.Logger
)

func fatal(msg string, err error) {
	appLogger.Error(fmt.Sprintf("%s: %v", msg, err))
	os.Exit(1)
}

func initGameConfig() {
	var err error
	gameConfig, err = config.LoadGameConfig(envs.GameConfigPath)
	if err != nil {
		fatal("Loading game config", err)
	}
	appLogger.Info(fmt.Sprintf("Game config loaded: %dx%d maze, %d ticks/s", gameConfig.Maze.Width, gameConfig.Maze.Height, gameConfig.TickRate))
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		fatal("Failed to connect to MongoDB", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed", err)
	}
	appLogger.Info("Connected to MongoDB")
}

func initUserRepo(ctx context.Context, client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		fatal("Creating user indexes", err)
	}
	appLogger.Info("User repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed", err)
	}
	appLogger.Info("Connected to Redis")
}

func initLeaderboard() {
	var err error
	board, err = leaderboard.NewRedisLeaderboard(redisClient, leaderboard.DefaultKey)
	if err != nil {
		fatal("Creating leaderboard", err)
	}
	appLogger.Info("Leaderboard initialized")
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		fatal("Creating session manager logger", err)
	}

	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		Game:        gameConfig,
		UserRepo:    userRepo,
		Leaderboard: board,
		Logger:      sessionLogger,
	})
	if err != nil {
		fatal("Creating session manager", err)
	}
	appLogger.Info("Session manager initialized")
}

func initGameController() {
	var err error
	gameController, err = gameapi.NewGameController(gameSessionManager, board)
	if err != nil {
		fatal("Creating game controller", err)
	}
	appLogger.Info("Game controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		fatal("Creating auth service", err)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService, userRepo)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, gameController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	envs = config.LoadEnvs()

	initCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initGameConfig()
	initMongo(initCtx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initUserRepo(initCtx, mongoClient)
	initRedis(initCtx)
	defer redisClient.Close()

	initLeaderboard()
	initSessionManager()
	initGameController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := router.Run(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Running server: %v", err))
	}

	gameSessionManager.StopAll()
	appLogger.Info("Server stopped")
}

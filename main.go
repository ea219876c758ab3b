package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/api/mazeapi"
	"github.com/beka-birhanu/vinom-maze/cli"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	cfg            config.Config
	redisClient    *redis.Client
	mongoClient    *mongo.Client
	imageCache     i.ImageCache
	mazeRepo       i.MazeRepo
	accountRepo    i.AccountRepo
	authService    i.Authenticator
	authController api_i.Controller
	mazeService    *service.MazeService
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	router         *api.Router
	appLogger      *logger.Logger
)

// initRedis connects the image cache. Caching is skipped when no address is configured.
func initRedis(ctx context.Context) error {
	if cfg.RedisAddr == "" {
		appLogger.Warning("REDIS_ADDR is not set, images will not be cached")
		return nil
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	appLogger.Info("Connected to Redis")

	c, err := cache.NewRedisImageCache(redisClient, cfg.CacheTTLSeconds)
	if err != nil {
		return fmt.Errorf("creating image cache: %w", err)
	}
	imageCache = c
	appLogger.Info("Image cache initialized")
	return nil
}

// initMongo connects the record store. Records are disabled when no database is configured.
func initMongo(ctx context.Context) error {
	uri := cfg.MongoURI()
	if uri == "" {
		appLogger.Warning("DB_HOST is not set, maze records are disabled")
		return nil
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	appLogger.Info("Connected to MongoDB")

	r := repo.NewMazeRepo(mongoClient, cfg.DBName, "mazes")
	if err := r.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("creating maze indexes: %w", err)
	}
	mazeRepo = r
	appLogger.Info("Maze repository initialized")

	accounts := repo.NewAccountRepo(mongoClient, cfg.DBName, "accounts")
	if err := accounts.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("creating account indexes: %w", err)
	}
	accountRepo = accounts
	appLogger.Info("Account repository initialized")
	return nil
}

func initMazeService() error {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorPurple, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating maze service logger: %w", err)
	}

	mazeService, err = service.NewMazeService(&service.Options{
		Cache:        imageCache,
		Repo:         mazeRepo,
		Logger:       serviceLogger,
		MaxDimension: cfg.MaxDimension,
	})
	if err != nil {
		return fmt.Errorf("creating maze service: %w", err)
	}
	appLogger.Info("Maze service initialized")
	return nil
}

func initMazeController() error {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		return fmt.Errorf("creating maze controller: %w", err)
	}
	appLogger.Info("Maze controller initialized")
	return nil
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

// initAuth sets up registration and login. Without a record store there is
// nothing for an account to own, so it is skipped.
func initAuth() error {
	if accountRepo == nil {
		return nil
	}

	authLogger, err := logger.New("AUTH", config.ColorBlue, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating auth logger: %w", err)
	}

	authService, err = service.NewAuthService(service.AuthConfig{
		Accounts:  accountRepo,
		Tokenizer: jwtTokenizer,
		Logger:    authLogger,
	})
	if err != nil {
		return fmt.Errorf("creating auth service: %w", err)
	}
	appLogger.Info("Auth service initialized")

	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
	return nil
}

func initRouter(t i.Tokenizer) {
	controllers := []api_i.Controller{mazeController}
	if authController != nil {
		controllers = append(controllers, authController)
	}

	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:                 "/api",
		Controllers:             controllers,
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

// serve wires the infrastructure and blocks on the HTTP server.
func serve() error {
	if err := cfg.ValidateServer(); err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := initRedis(ctx); err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	if err := initMongo(ctx); err != nil {
		return err
	}
	if mongoClient != nil {
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
	}

	if err := initMazeService(); err != nil {
		return err
	}
	if err := initMazeController(); err != nil {
		return err
	}
	initJWTTokenizer()
	if err := initAuth(); err != nil {
		return err
	}
	initRouter(jwtTokenizer)

	return router.Run()
}

// appLoggerPrefix tags the lines of the top level logger.
var appLoggerPrefix = "APP"

// run builds the app logger, loads the configuration and hands args to the
// command line, returning the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var err error
	appLogger, err = logger.New(appLoggerPrefix, config.ColorGreen, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "creating app logger: %s\n", err)
		return 1
	}
	cfg = config.Load()

	return cli.Run(args, cli.Env{
		Config: cfg,
		Stdout: stdout,
		Stderr: stderr,
		Serve:  serve,
	})
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gridcarve/carver-api/api"
	carveapi "github.com/gridcarve/carver-api/api/carve"
	api_i "github.com/gridcarve/carver-api/api/i"
	"github.com/gridcarve/carver-api/api/identity"
	"github.com/gridcarve/carver-api/config"
	"github.com/gridcarve/carver-api/infrastruture/programcache"
	"github.com/gridcarve/carver-api/infrastruture/repo"
	"github.com/gridcarve/carver-api/infrastruture/token"
	"github.com/gridcarve/carver-api/logger"
	"github.com/gridcarve/carver-api/service"
	"github.com/gridcarve/carver-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	userRepo        i.UserRepo
	carvingRepo     i.CarvingRepo
	programCache    i.ProgramCache
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	carveService    i.Carver
	authController  api_i.Controller
	carveController api_i.Controller
	router          *api.Router
	appLogger       i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	carvingRepo = repo.NewCarvingRepo(client, config.Envs.DBName, "carvings")
	appLogger.Info("Repositories initialized")
}

func initProgramCache() {
	var err error
	programCache, err = programcache.NewRedisProgramCache(redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating program cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Program cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initCarveService() {
	carveLogger, err := logger.New("CARVER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating carve service logger: %v", err))
		os.Exit(1)
	}

	carveService, err = service.NewCarveService(carvingRepo, programCache, carveLogger, nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating carve service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Carve service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	carveController, err = carveapi.NewCarveController(carveService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating carve controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, carveController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initProgramCache()
	initJWTTokenizer()
	initAuthService()
	initCarveService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

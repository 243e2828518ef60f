package app

import (
	"context"
	"duoChat/configs"
	"duoChat/internal/enums"
	"duoChat/internal/handlers"
	"duoChat/internal/interfaces"
	"duoChat/internal/logger"
	"duoChat/internal/presence"
	"duoChat/internal/repositories"
	"duoChat/internal/servers/database"
	"duoChat/internal/servers/http"
	"duoChat/internal/services"
	"duoChat/internal/socket"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
	server  *http.HttpServer
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	defer logger.Sync()

	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	authRepo, chatRepo, closeStore := app.initializeStores()

	fileManager := app.initializeFileManager()
	fileManagerService := services.NewFileManagerService(fileManager, app.configs.Viper.GetInt64("media.max_image_bytes"))

	hub := socket.NewHub()
	registry := presence.NewRegistry(
		hub,
		repositories.NewRedisPresenceRepository(app.redis),
		app.configs.Viper.GetDuration("presence.ttl"),
	)

	authService := services.NewAuthenticationService(
		authRepo,
		chatRepo,
		fileManagerService,
		repositories.NewTokenBlacklistRepository(app.redis),
		app.configs,
	)
	chatService := services.NewChatService(chatRepo, authRepo, fileManagerService, registry)

	restHandler := handlers.NewRestHandler(authService, chatService)
	socketHandler := handlers.NewSocketHandler(
		hub,
		registry,
		authService,
		app.configs.Viper.GetBool("socket.require_token"),
	)

	app.server = http.NewHttpServer(app.configs, hub, restHandler, socketHandler)
	if closeStore != nil {
		app.server.OnShutdown(closeStore)
	}
	app.server.OnShutdown(func(context.Context) error {
		return app.redis.Close()
	})
	app.server.Run()
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
	logger.SetLevel(app.configs.Viper.GetString("log.level"))
	if app.configs.Viper.GetString("jwt.secret") == "" {
		logger.Fatal("jwt.secret must be set (JWT_SECRET)")
	}
}

func (app *App) initializeRedis() {
	client, err := database.NewRedisClient(app.configs)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	app.redis = client
}

// initializeStores picks the Account and Message stores from database.driver.
func (app *App) initializeStores() (interfaces.AccountRepository, interfaces.MessageRepository, func(context.Context) error) {
	driver := app.configs.Viper.GetString("database.driver")
	switch driver {
	case enums.DATABASE_DRIVER_POSTGRES:
		db := database.GetDB(app.configs)
		closeDB := func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return repositories.NewAuthenticationRepository(db), repositories.NewChatRepository(db), closeDB

	case enums.DATABASE_DRIVER_MONGO:
		mongoClient, err := database.NewMongoConnection(app.configs)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		authRepo := repositories.NewMongoAuthenticationRepository(mongoClient.Database)
		chatRepo := repositories.NewMongoChatRepository(mongoClient.Database)
		if err := authRepo.EnsureIndexes(app.ctx); err != nil {
			logger.Fatal("Failed to prepare users collection", zap.Error(err))
		}
		if err := chatRepo.EnsureIndexes(app.ctx); err != nil {
			logger.Fatal("Failed to prepare messages collection", zap.Error(err))
		}
		logger.Info("Connected to MongoDB", zap.String("database", mongoClient.Database.Name()))
		return authRepo, chatRepo, mongoClient.Close

	default:
		logger.Fatal("unknown database driver", zap.String("driver", driver))
		return nil, nil, nil
	}
}

func (app *App) initializeFileManager() interfaces.FileManager {
	driver := app.configs.Viper.GetString("media.driver")
	switch driver {
	case enums.MEDIA_DRIVER_S3:
		s3Service, err := services.NewS3Service(app.ctx, app.configs)
		if err != nil {
			logger.Fatal("Failed to configure S3", zap.Error(err))
		}
		return s3Service
	case enums.MEDIA_DRIVER_MINIO:
		return services.NewMinioService(app.configs)
	default:
		logger.Fatal("unknown media driver", zap.String("driver", driver))
		return nil
	}
}

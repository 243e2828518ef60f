package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"duoChat/configs"
	"duoChat/docs"
	"duoChat/internal/handlers"
	"duoChat/internal/logger"
	"duoChat/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type HttpServer struct {
	config        *configs.Config
	router        *gin.Engine
	hub           *socket.Hub
	restHandler   *handlers.RestHandler
	socketHandler *handlers.SocketHandler
	closers       []func(context.Context) error
}

func NewHttpServer(
	config *configs.Config,
	hub *socket.Hub,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketHandler,
) *HttpServer {
	return &HttpServer{
		config:        config,
		hub:           hub,
		restHandler:   restHandler,
		socketHandler: socketHandler,
	}
}

// OnShutdown registers cleanup that runs after the listener and the hub have
// stopped, in registration order.
func (hs *HttpServer) OnShutdown(closer func(context.Context) error) {
	hs.closers = append(hs.closers, closer)
}

// Run serves until SIGINT or SIGTERM, then shuts everything down.
func (hs *HttpServer) Run() {
	hubCtx, stopHub := context.WithCancel(context.Background())
	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		hs.hub.Run(hubCtx)
	}()

	server := hs.startServer(hs.Handler())

	hs.waitForShutdown(server, stopHub, hubDone)
}

// Handler builds the full router wrapped in CORS.
func (hs *HttpServer) Handler() http.Handler {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()
	hs.setupDocsRoutes()

	return cors.New(cors.Options{
		AllowedOrigins: hs.config.Viper.GetStringSlice("server.cors_allowed_origins"),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(hs.router)
}

func (hs *HttpServer) initializeGin() {
	gin.SetMode(hs.config.Viper.GetString("server.mode"))
	hs.router = gin.New()
	hs.router.Use(gin.Recovery(), handlers.RequestLogger())
}

func (hs *HttpServer) setupRestfulRoutes() {
	api := hs.router.Group(hs.config.Viper.GetString("server.base_path"))
	api.Use(handlers.BodyLimit(hs.config.Viper.GetInt64("server.body_limit_bytes")))

	api.GET("/status", hs.restHandler.Status)

	auth := api.Group("/auth")
	auth.POST("/signup", hs.restHandler.Signup)
	auth.POST("/login", hs.restHandler.Login)

	protectedAuth := auth.Group("", hs.restHandler.MustAuthenticateMiddleware())
	protectedAuth.GET("/check", hs.restHandler.CheckAuth)
	protectedAuth.PUT("/update-profile", hs.restHandler.UpdateProfile)
	protectedAuth.DELETE("/delete", hs.restHandler.DeleteAccount)
	protectedAuth.POST("/logout", hs.restHandler.Logout)

	messages := api.Group("/messages", hs.restHandler.MustAuthenticateMiddleware())
	messages.GET("/users", hs.restHandler.GetUsers)
	messages.GET("/:peerId", hs.restHandler.GetMessages)
	messages.PUT("/mark/:messageId", hs.restHandler.MarkMessageAsSeen)
	messages.POST("/send/:peerId", hs.restHandler.SendMessage)
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws", hs.socketHandler.HandleSocketRoute)
}

func (hs *HttpServer) setupDocsRoutes() {
	docs.SwaggerInfo.BasePath = hs.config.Viper.GetString("server.base_path")
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (hs *HttpServer) startServer(handler http.Handler) *http.Server {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", hs.config.Viper.GetInt("server.port")),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server, stopHub context.CancelFunc, hubDone <-chan struct{}) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), hs.config.Viper.GetDuration("server.shutdown_timeout"))
	defer cancel()

	// Hijacked websocket connections are not tracked by Shutdown, the hub
	// closes them.
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	stopHub()
	select {
	case <-hubDone:
	case <-ctx.Done():
		logger.Warn("socket hub did not stop in time")
	}

	for _, closer := range hs.closers {
		if err := closer(ctx); err != nil {
			logger.Warn("shutdown cleanup failed", zap.Error(err))
		}
	}

	logger.Info("Server exiting")
}

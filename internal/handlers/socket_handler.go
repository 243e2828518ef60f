package handlers

import (
	"net/http"

	"duoChat/internal/enums"
	"duoChat/internal/errs"
	"duoChat/internal/logger"
	"duoChat/internal/presence"
	"duoChat/internal/services"
	"duoChat/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type SocketHandler struct {
	upgrader     websocket.Upgrader
	hub          *socket.Hub
	registry     *presence.Registry
	authService  *services.AuthenticationService
	requireToken bool
}

func NewSocketHandler(
	hub *socket.Hub,
	registry *presence.Registry,
	authService *services.AuthenticationService,
	requireToken bool,
) *SocketHandler {
	return &SocketHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		hub:          hub,
		registry:     registry,
		authService:  authService,
		requireToken: requireToken,
	}
}

// HandleSocketRoute godoc
// @Summary      Live channel
// @Description  Upgrades to a WebSocket. Frames are {"event","payload"} with events getOnlineUsers and newMessage.
// @Tags         socket
// @Param        userId  query  string  false  "User id to mark online"
// @Param        token   query  string  false  "JWT, required when socket.require_token is set"
// @Success      101  {string}  string  "Switching Protocols"
// @Failure      401  {object}  models.Response
// @Router       /ws [get]
func (sh *SocketHandler) HandleSocketRoute(ctx *gin.Context) {
	userID := ctx.Query("userId")

	if sh.requireToken {
		if err := sh.checkToken(ctx.Query("token"), userID); err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, failure(ctx, err))
			return
		}
	}

	conn, err := sh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Warn("socket upgrade failed", zap.Error(err))
		return
	}

	client := socket.NewClient(sh.hub, conn, userID)
	sh.hub.Register(client)
	go client.WritePump()

	if userID == "" {
		// Anonymous sockets never change presence, so send them the current
		// list directly.
		if err := client.Push(enums.SOCKET_EVENT_GET_ONLINE_USERS, sh.registry.OnlineUsers()); err != nil {
			logger.Debug("initial presence push failed", zap.Error(err))
		}
	} else if previous := sh.registry.Register(userID, client); previous != nil {
		logger.Info("socket superseded", zap.String("user_id", userID))
	}
	logger.Info("user connected", zap.String("user_id", userID))

	client.ReadPump(func() {
		sh.registry.Touch(userID, client)
	})

	sh.registry.Unregister(userID, client)
	sh.hub.Unregister(client)
	logger.Info("user disconnected", zap.String("user_id", userID))
}

func (sh *SocketHandler) checkToken(token, userID string) error {
	if token == "" {
		return errs.Auth(errs.ErrTokenMissing)
	}
	claims, err := sh.authService.VerifyToken(token)
	if err != nil {
		return err
	}
	if userID == "" || claims.UserID != userID {
		return errs.Auth(errs.ErrInvalidToken)
	}
	return nil
}

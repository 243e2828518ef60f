package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"duoChat/configs"
	"duoChat/internal/handlers"
	"duoChat/internal/interfaces/mocks"
	"duoChat/internal/presence"
	"duoChat/internal/services"
	"duoChat/internal/socket"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	config, err := configs.LoadConfig(t.TempDir())
	require.NoError(t, err)
	config.Viper.Set("server.mode", "test")
	config.Viper.Set("jwt.secret", "secret")
	config.Viper.Set("server.cors_allowed_origins", []string{"http://localhost:5173"})

	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	messages := mocks.NewMockMessageRepository(ctrl)
	fileManager := services.NewFileManagerService(mocks.NewMockFileManager(ctrl), 1<<20)

	hub := socket.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	registry := presence.NewRegistry(hub, nil, time.Minute)

	authService := services.NewAuthenticationService(accounts, messages, fileManager, mocks.NewMockTokenBlacklist(ctrl), config)
	chatService := services.NewChatService(messages, accounts, fileManager, registry)

	server := NewHttpServer(
		config,
		hub,
		handlers.NewRestHandler(authService, chatService),
		handlers.NewSocketHandler(hub, registry, authService, false),
	)
	return server.Handler()
}

func TestHandler_Routes(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "status", method: http.MethodGet, path: "/api/status", wantStatus: http.StatusOK},
		{name: "protected route needs a token", method: http.MethodGet, path: "/api/messages/users", wantStatus: http.StatusUnauthorized},
		{name: "history needs a token", method: http.MethodGet, path: "/api/messages/b", wantStatus: http.StatusUnauthorized},
		{name: "logout needs a token", method: http.MethodPost, path: "/api/auth/logout", wantStatus: http.StatusUnauthorized},
		{name: "swagger doc", method: http.MethodGet, path: "/swagger/doc.json", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope/nope/nope", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

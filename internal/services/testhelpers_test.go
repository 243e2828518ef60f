package services

import (
	"encoding/base64"
	"sync"
	"testing"

	"duoChat/configs"

	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var pngBytes, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==",
)

func pngDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}

func testConfig(t *testing.T) *configs.Config {
	t.Helper()
	config, err := configs.LoadConfig(t.TempDir())
	require.NoError(t, err)
	config.Viper.Set("jwt.secret", "test-secret")
	config.Viper.Set("jwt.expiration_time", 3600)
	return config
}

type pushed struct {
	event   string
	payload any
}

type recordingPusher struct {
	mu     sync.Mutex
	frames []pushed
	err    error
}

func (p *recordingPusher) Push(event string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.frames = append(p.frames, pushed{event: event, payload: payload})
	return nil
}

func (p *recordingPusher) Frames() []pushed {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]pushed(nil), p.frames...)
}

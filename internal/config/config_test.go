package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"SERVER_PORT", "DATABASE_URL", "CHAT_RATE_LIMIT", "CHAT_RATE_WINDOW",
		"FAQ_MATCH_THRESHOLD", "FAQ_ACCEPT_THRESHOLD", "SMTP_HOST", "DIGEST_RECIPIENT"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 20, cfg.ChatRateLimit)
	assert.Equal(t, time.Minute, cfg.ChatRateWindow)
	assert.InDelta(t, 0.6, cfg.FaqMatchThreshold, 1e-9)
	assert.InDelta(t, 0.35, cfg.FaqAcceptThreshold, 1e-9)
	assert.False(t, cfg.EmailEnabled())
	assert.Equal(t, "postgres://postgres:@localhost:5432/marea?sslmode=disable", cfg.GetDBConnString())
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	tests := map[string]string{
		"CHAT_RATE_LIMIT":      "muchos",
		"CHAT_RATE_WINDOW":     "un minuto",
		"FAQ_MATCH_THRESHOLD":  "alto",
		"FAQ_ACCEPT_THRESHOLD": "0.9",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfig_DatabaseURLWins(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://u:p@db:5432/x", DBHost: "ignored"}
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.GetDBConnString())
}

func TestConfig_AllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: " https://lamarea.cl, ,https://costaviva.cl "}
	assert.Equal(t, []string{"https://lamarea.cl", "https://costaviva.cl"}, cfg.AllowedOrigins())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

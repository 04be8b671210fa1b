package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Defaults
const (
	DefaultPort         = 3000
	DefaultLyricsAPIURL = "https://api.joshweb.click/api/ailyrics"
	DefaultLogLevel     = logrus.InfoLevel
)

// ErrInvalidPort is returned when PORT is set but is not a usable TCP port.
var ErrInvalidPort = errors.New("invalid port")

// Config holds the process configuration read from the environment.
type Config struct {
	Port         int
	PublicDir    string // empty means the embedded public tree
	LyricsAPIURL string
	LogLevel     logrus.Level
}

// Load reads PORT, PUBLIC_DIR, LYRICS_API_URL and LOG_LEVEL.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         DefaultPort,
		PublicDir:    os.Getenv("PUBLIC_DIR"),
		LyricsAPIURL: DefaultLyricsAPIURL,
		LogLevel:     DefaultLogLevel,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("%w: PORT=%q", ErrInvalidPort, v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("LYRICS_API_URL"); v != "" {
		cfg.LyricsAPIURL = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// GetUpgrader returns the WebSocket upgrader. The default origin check
// (same host only) applies.
func GetUpgrader() websocket.Upgrader {
	return upgrader
}

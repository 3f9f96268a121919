package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type API struct {
	BaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
}

type Stub struct {
	Addr      string `envconfig:"STUB_ADDR" default:":8080"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-secret"`
}

type Config struct {
	API         API
	Stub        Stub
	SessionFile string `envconfig:"SESSION_FILE"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
}

// New reads configuration from the environment. The session file defaults to
// a dotfile in the user's home directory when not set explicitly.
func New() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.SessionFile = filepath.Join(home, ".peminjaman", "session.json")
	}

	return cfg, nil
}

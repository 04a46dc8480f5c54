package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	coreconfig "github.com/go-core-fx/config"
)

type Config struct {
	APIURL    string        `koanf:"api_url"`
	TokenFile string        `koanf:"token_file"`
	Timeout   time.Duration `koanf:"timeout"`
	LogFile   string        `koanf:"log_file"`
	Debug     bool          `koanf:"debug"`
}

func New() (Config, error) {
	cfg := Config{
		APIURL:    "http://localhost:8000",
		TokenFile: defaultTokenFile(),
		Timeout:   20 * time.Second,
		LogFile:   "./loyalty-admin.log",
		Debug:     false,
	}

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./loyalty-admin-tokens.json"
	}
	return filepath.Join(home, ".loyalty-admin", "tokens.json")
}

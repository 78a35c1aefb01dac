package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"literarylens/internal/audio"
)

// EnvPrefix prefixes every environment override (LITERARYLENS_SERVER_PORT, ...)
const EnvPrefix = "LITERARYLENS_"

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "literarylens.toml"

// Config represents the application configuration
type Config struct {
	Version int           `koanf:"version" toml:"version"`
	Site    SiteConfig    `koanf:"site" toml:"site"`
	Server  ServerConfig  `koanf:"server" toml:"server"`
	Audio   AudioConfig   `koanf:"audio" toml:"audio"`
	Overlay OverlayConfig `koanf:"overlay" toml:"overlay"`
	Catalog CatalogConfig `koanf:"catalog" toml:"catalog"`
}

// SiteConfig locates the static tree. An empty Root serves the embedded site.
type SiteConfig struct {
	Root  string `koanf:"root" toml:"root"`
	Index string `koanf:"index" toml:"index"`
}

// ServerConfig configures the static asset server
type ServerConfig struct {
	Port            int  `koanf:"port" toml:"port"`
	AllowAllOrigins bool `koanf:"allow_all_origins" toml:"allow_all_origins"`
}

// AudioConfig configures the ambient audio session
type AudioConfig struct {
	Enabled bool    `koanf:"enabled" toml:"enabled"`
	Source  string  `koanf:"source" toml:"source"`
	Volume  float64 `koanf:"volume" toml:"volume"`
	// Command is the decoder invocation, see audio.ExecPlayer; empty uses
	// audio.DefaultCommand
	Command []string `koanf:"command" toml:"command,omitempty"`
	// RequireInteraction blocks playback until the first key press
	RequireInteraction bool `koanf:"require_interaction" toml:"require_interaction"`
}

// OverlayConfig holds the overlay transition delays as duration strings
type OverlayConfig struct {
	SettleDelay string `koanf:"settle_delay" toml:"settle_delay"`
	FadeDelay   string `koanf:"fade_delay" toml:"fade_delay"`
}

// CatalogConfig names the catalog list file, relative to the site root
type CatalogConfig struct {
	File string `koanf:"file" toml:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service reading path (DefaultPath when empty)
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath
	}
	return &configService{filePath: path}
}

// Load loads the configuration from the service's file
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath reads path when it exists, then overlays LITERARYLENS_*
// variables and finally PORT. A missing file yields the defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), TOMLParser()); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to access config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath writes the configuration as TOML
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// envKey maps LITERARYLENS_SERVER_PORT to server.port and
// LITERARYLENS_OVERLAY_SETTLE_DELAY to overlay.settle_delay
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1, got %v", c.Audio.Volume)
	}
	if _, err := c.Overlay.Settle(); err != nil {
		return err
	}
	if _, err := c.Overlay.Fade(); err != nil {
		return err
	}
	return nil
}

// Settle parses the settle delay; empty means the default
func (o OverlayConfig) Settle() (time.Duration, error) {
	return parseDelay("overlay.settle_delay", o.SettleDelay)
}

// Fade parses the fade delay; empty means the default
func (o OverlayConfig) Fade() (time.Duration, error) {
	return parseDelay("overlay.fade_delay", o.FadeDelay)
}

func parseDelay(name, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return d, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Site: SiteConfig{
			Index: "index.html",
		},
		Server: ServerConfig{
			Port: 3000,
		},
		Audio: AudioConfig{
			Enabled:            true,
			Source:             "audio/acoustic-chill.mp3",
			Volume:             audio.DefaultVolume,
			RequireInteraction: true,
		},
		Overlay: OverlayConfig{
			SettleDelay: "40ms",
			FadeDelay:   "300ms",
		},
		Catalog: CatalogConfig{
			File: "catalog.toml",
		},
	}
}

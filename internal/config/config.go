package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"magicbook/internal/eventbus"
)

// EnvPrefix prefixes environment overrides, e.g. MAGICBOOK_UI_REDUCED_MOTION
const EnvPrefix = "MAGICBOOK"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version int             `mapstructure:"version"`
	UI      UISettings      `mapstructure:"ui"`
	Content ContentSettings `mapstructure:"content"`
	Contact ContactSettings `mapstructure:"contact"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ReducedMotion bool   `mapstructure:"reduced_motion"`
	CompactWidth  int    `mapstructure:"compact_width"` // columns below which the compact layout is used
	Welcome       bool   `mapstructure:"welcome"`
	LogFile       string `mapstructure:"log_file"`
}

// ContentSettings points at the portfolio document
type ContentSettings struct {
	Path  string `mapstructure:"path"` // empty means the embedded portfolio
	Watch bool   `mapstructure:"watch"`
}

// ContactSettings tunes the simulated contact form
type ContactSettings struct {
	SubmitDelay time.Duration `mapstructure:"submit_delay"`
	StatusTTL   time.Duration `mapstructure:"status_ttl"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			CompactWidth: 80,
			Welcome:      true,
			LogFile:      "magicbook.log",
		},
		Contact: ContactSettings{
			SubmitDelay: 2 * time.Second,
			StatusTTL:   5 * time.Second,
		},
	}
}

// Validate rejects values the UI cannot work with
func (c *Config) Validate() error {
	if c.UI.CompactWidth < 0 {
		return fmt.Errorf("%w: ui.compact_width must not be negative", ErrInvalid)
	}
	if c.Contact.SubmitDelay < 0 {
		return fmt.Errorf("%w: contact.submit_delay must not be negative", ErrInvalid)
	}
	if c.Contact.StatusTTL < 0 {
		return fmt.Errorf("%w: contact.status_ttl must not be negative", ErrInvalid)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Path() string
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	LoadOrCreate(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns ~/.config/magicbook/config.toml, or the platform's
// equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "magicbook", "config.toml")
}

// NewConfigService creates a config service for path, or DefaultPath when
// path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the service's file, creating it with defaults when missing
func (cs *configService) Load() (*Config, error) {
	return cs.LoadOrCreate(cs.filePath)
}

// LoadOrCreate writes the default configuration to path if nothing is there
// yet, then loads it
func (cs *configService) LoadOrCreate(path string) (*Config, error) {
	created := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("Creating default config at %s", path)
		if err := cs.SaveToPath(DefaultConfig(), path); err != nil {
			return nil, err
		}
		created = true
	}

	cfg, err := cs.LoadFromPath(path)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Created: created})
	}
	return cfg, nil
}

// LoadFromPath reads path layered over the defaults, then applies
// MAGICBOOK_* environment overrides
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return decode(v)
}

// SaveToPath writes config as TOML, creating the directory if needed
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Encode(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

// Encode renders config in the on-disk TOML format
func Encode(config *Config) ([]byte, error) {
	data, err := toml.Marshal(toDocument(config))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// FromEnv returns the defaults with environment overrides applied, for runs
// that skip the config file entirely
func FromEnv() (*Config, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")

	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("ui.reduced_motion", d.UI.ReducedMotion)
	v.SetDefault("ui.compact_width", d.UI.CompactWidth)
	v.SetDefault("ui.welcome", d.UI.Welcome)
	v.SetDefault("ui.log_file", d.UI.LogFile)
	v.SetDefault("content.path", d.Content.Path)
	v.SetDefault("content.watch", d.Content.Watch)
	v.SetDefault("contact.submit_delay", d.Contact.SubmitDelay)
	v.SetDefault("contact.status_ttl", d.Contact.StatusTTL)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// document is the on-disk shape; durations are written as "2s" so the file
// stays hand-editable
type document struct {
	Version int `toml:"version"`
	UI      struct {
		ReducedMotion bool   `toml:"reduced_motion"`
		CompactWidth  int    `toml:"compact_width"`
		Welcome       bool   `toml:"welcome"`
		LogFile       string `toml:"log_file"`
	} `toml:"ui"`
	Content struct {
		Path  string `toml:"path"`
		Watch bool   `toml:"watch"`
	} `toml:"content"`
	Contact struct {
		SubmitDelay string `toml:"submit_delay"`
		StatusTTL   string `toml:"status_ttl"`
	} `toml:"contact"`
}

func toDocument(c *Config) document {
	var d document
	d.Version = c.Version
	d.UI.ReducedMotion = c.UI.ReducedMotion
	d.UI.CompactWidth = c.UI.CompactWidth
	d.UI.Welcome = c.UI.Welcome
	d.UI.LogFile = c.UI.LogFile
	d.Content.Path = c.Content.Path
	d.Content.Watch = c.Content.Watch
	d.Contact.SubmitDelay = c.Contact.SubmitDelay.String()
	d.Contact.StatusTTL = c.Contact.StatusTTL.String()
	return d
}

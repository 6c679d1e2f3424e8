package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Shop    ShopConfig    `toml:"shop"`
	Server  ServerConfig  `toml:"server"`
	Store   StoreConfig   `toml:"store"`
	Logging LoggingConfig `toml:"logging"`
}

// ShopConfig holds the gameplay rules of one shop.
type ShopConfig struct {
	LineDepth       int           `toml:"line_depth" validate:"min=1,max=20"`
	MaxSpawnPerTick int           `toml:"max_spawn_per_tick" validate:"min=1"`
	RegularsToWin   int           `toml:"regulars_to_win" validate:"min=1"`
	LingerTicks     int           `toml:"linger_ticks" validate:"min=0"`
	EmoteTicks      int           `toml:"emote_ticks" validate:"min=0"`
	TickInterval    time.Duration `toml:"tick_interval" validate:"gt=0"`
	QueuePolicy     string        `toml:"queue_policy" validate:"oneof=dequeue rotate"`
	RankPolicy      string        `toml:"rank_policy" validate:"oneof=weighted average lua"`
	LuaScript       string        `toml:"lua_script" validate:"required_if=RankPolicy lua"`
	Catalog         string        `toml:"catalog"` // optional YAML override of the embedded catalog
	Seed            int64         `toml:"seed"`    // 0 = seed from the clock
}

type ServerConfig struct {
	Port              int     `toml:"port" validate:"min=1,max=65535"`
	HostKey           string  `toml:"host_key" validate:"required"`
	SessionsPerSecond float64 `toml:"sessions_per_second" validate:"gt=0"`
	SessionBurst      int     `toml:"session_burst" validate:"min=1"`
	MaxSessions       int     `toml:"max_sessions" validate:"min=1"`
}

type StoreConfig struct {
	Driver string `toml:"driver" validate:"oneof=none jsonl sqlite postgres"`
	Path   string `toml:"path"` // jsonl directory or sqlite file; empty = XDG data dir
	DSN    string `toml:"dsn" validate:"required_if=Driver postgres"`
}

type LoggingConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=json console"`
	File   string `toml:"file"` // empty = stderr
}

// Load reads a TOML file over the defaults. An empty path yields the
// defaults alone.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Shop: ShopConfig{
			LineDepth:       3,
			MaxSpawnPerTick: 1,
			RegularsToWin:   3,
			LingerTicks:     4,
			EmoteTicks:      2,
			TickInterval:    500 * time.Millisecond,
			QueuePolicy:     "dequeue",
			RankPolicy:      "weighted",
		},
		Server: ServerConfig{
			Port:              2222,
			HostKey:           "server_host_key",
			SessionsPerSecond: 2,
			SessionBurst:      4,
			MaxSessions:       32,
		},
		Store: StoreConfig{
			Driver: "jsonl",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

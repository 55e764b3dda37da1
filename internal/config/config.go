package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/yacht/internal/game"
)

// Config holds application configuration.
type Config struct {
	Game     GameConfig
	Database DatabaseConfig
	Results  ResultsConfig
	Log      LogConfig
}

// GameConfig holds session settings. Zero Players and empty Seed mean ask
// and random respectively.
type GameConfig struct {
	Mode      string
	Seed      string
	Players   int
	Names     []string
	Shuffle   bool
	ShowRules string `mapstructure:"show_rules"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path    string
	Enabled bool
}

// ResultsConfig controls the end-of-game export.
type ResultsConfig struct {
	Export string
	Format string
}

// LogConfig holds logger settings. An empty File logs to stderr.
type LogConfig struct {
	Level string
	File  string
}

const (
	ShowRulesAsk    = "ask"
	ShowRulesAlways = "always"
	ShowRulesNever  = "never"

	FormatText = "text"
	FormatTOML = "toml"
)

// ModeValue parses Game.Mode.
func (c Config) ModeValue() (game.Mode, error) {
	return game.ParseMode(c.Game.Mode)
}

// SeedValue parses Game.Seed. A nil result means no fixed seed.
func (c Config) SeedValue() (*int64, error) {
	s := strings.TrimSpace(c.Game.Seed)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: must be an integer", c.Game.Seed)
	}
	return &v, nil
}

// Flags registers the command-line flags Load understands.
func Flags(flags *pflag.FlagSet) {
	flags.String("config", "", "path to config file")
	flags.String("mode", "", "game mode: classic or extended")
	flags.String("seed", "", "seed for a reproducible game")
	flags.Int("players", 0, "number of players (0 asks)")
	flags.StringArray("name", nil, "player name, repeat once per player")
	flags.Bool("shuffle", false, "randomize turn order")
	flags.String("rules", "", "show rules: ask, always or never")
	flags.String("db", "", "path to the results database")
	flags.Bool("no-db", false, "do not record results")
	flags.String("export", "", "write final results to this file")
	flags.String("format", "", "export format: text or toml")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write logs to this file instead of stderr")
}

// Load reads configuration from defaults, file, env and flags, in that order
// of precedence from lowest to highest. Env var overrides use prefix YACHT_.
// flags must have been prepared with Flags; they are parsed with args.
func Load(flags *pflag.FlagSet, args []string) (Config, error) {
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()

	// default values
	v.SetDefault("game.mode", "classic")
	v.SetDefault("game.seed", "")
	v.SetDefault("game.players", 0)
	v.SetDefault("game.names", []string{})
	v.SetDefault("game.shuffle", false)
	v.SetDefault("game.show_rules", ShowRulesAsk)
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "yacht", "yacht.db"))
	v.SetDefault("database.enabled", true)
	v.SetDefault("results.export", "")
	v.SetDefault("results.format", FormatText)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath, _ := flags.GetString("config")
	if cfgPath == "" {
		cfgPath = os.Getenv("YACHT_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "yacht"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("YACHT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	binds := map[string]string{
		"game.mode":       "mode",
		"game.seed":       "seed",
		"game.players":    "players",
		"game.names":      "name",
		"game.shuffle":    "shuffle",
		"game.show_rules": "rules",
		"database.path":   "db",
		"results.export":  "export",
		"results.format":  "format",
		"log.level":       "log-level",
		"log.file":        "log-file",
	}
	for key, flag := range binds {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}
	if noDB, _ := flags.GetBool("no-db"); noDB {
		v.Set("database.enabled", false)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, err := c.ModeValue(); err != nil {
		return err
	}
	if _, err := c.SeedValue(); err != nil {
		return err
	}
	if c.Game.Players < 0 {
		return fmt.Errorf("invalid player count %d: must not be negative", c.Game.Players)
	}
	if c.Game.Players > 0 && len(c.Game.Names) > c.Game.Players {
		return fmt.Errorf("%d names given for %d players", len(c.Game.Names), c.Game.Players)
	}
	switch c.Game.ShowRules {
	case ShowRulesAsk, ShowRulesAlways, ShowRulesNever:
	default:
		return fmt.Errorf("invalid show_rules %q: must be ask, always or never", c.Game.ShowRules)
	}
	switch c.Results.Format {
	case FormatText, FormatTOML:
	default:
		return fmt.Errorf("invalid export format %q: must be text or toml", c.Results.Format)
	}
	return nil
}

// Path returns where Save writes: $YACHT_CONFIG or the default location.
func Path() string {
	if p := os.Getenv("YACHT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "yacht", "config.toml")
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("game.mode", cfg.Game.Mode)
	v.Set("game.seed", cfg.Game.Seed)
	v.Set("game.players", cfg.Game.Players)
	v.Set("game.names", cfg.Game.Names)
	v.Set("game.shuffle", cfg.Game.Shuffle)
	v.Set("game.show_rules", cfg.Game.ShowRules)
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.enabled", cfg.Database.Enabled)
	v.Set("results.export", cfg.Results.Export)
	v.Set("results.format", cfg.Results.Format)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

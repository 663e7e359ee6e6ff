package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/atomicstack/surfaces/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	envPrefix = "SURFACES"

	keyConfig       = "config"
	keyWidth        = "width"
	keyHeight       = "height"
	keyFooter       = "footer"
	keyTrace        = "trace"
	keyLogFile      = "log-file"
	keySeed         = "seed"
	keyPageSize     = "page-size"
	keyPageInterval = "page-interval"
	keyOpen         = "open"
	keyAuthor       = "author"
	keyVerbose      = "verbose"
)

// Load parses configuration from CLI arguments, SURFACES_* environment
// variables and an optional config file, in that order of precedence.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs allows tests to supply specific args.
func LoadArgs(args []string) (Config, error) {
	fs := pflag.NewFlagSet("surfaces", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.String(keyConfig, "", "path to a YAML or TOML config file")
	fs.Int(keyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(keyFooter, true, "show the key hint footer")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.String(keyLogFile, "", "path to the log file")
	fs.String(keySeed, "", "YAML file of surfaces to load at start (built-in demo set when empty)")
	fs.Int(keyPageSize, 25, "surfaces delivered per page while loading")
	fs.Duration(keyPageInterval, 150*time.Millisecond, "pause between loaded pages")
	fs.Bool(keyOpen, true, "open the surface list on start")
	fs.String(keyAuthor, "you", "name recorded on surfaces and notes you create")
	fs.Bool(keyVerbose, false, "show status messages for model notifications")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := strings.TrimSpace(v.GetString(keyConfig)); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		App: app.Config{
			Width:        v.GetInt(keyWidth),
			Height:       v.GetInt(keyHeight),
			ShowFooter:   v.GetBool(keyFooter),
			Verbose:      v.GetBool(keyVerbose),
			SeedPath:     v.GetString(keySeed),
			PageSize:     v.GetInt(keyPageSize),
			PageInterval: v.GetDuration(keyPageInterval),
			OpenOnStart:  v.GetBool(keyOpen),
			Author:       strings.TrimSpace(v.GetString(keyAuthor)),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		Args: append([]string(nil), args...),
	}
	cfg.Flags = map[string]string{
		keyConfig:       v.GetString(keyConfig),
		keyWidth:        strconv.Itoa(cfg.App.Width),
		keyHeight:       strconv.Itoa(cfg.App.Height),
		keyFooter:       strconv.FormatBool(cfg.App.ShowFooter),
		keyTrace:        strconv.FormatBool(cfg.Logging.Trace),
		keyLogFile:      cfg.Logging.FilePath,
		keySeed:         cfg.App.SeedPath,
		keyPageSize:     strconv.Itoa(cfg.App.PageSize),
		keyPageInterval: cfg.App.PageInterval.String(),
		keyOpen:         strconv.FormatBool(cfg.App.OpenOnStart),
		keyAuthor:       cfg.App.Author,
		keyVerbose:      strconv.FormatBool(cfg.App.Verbose),
	}
	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the UI cannot work with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("%w: width must be >= 0 (got %d)", ErrInvalid, cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("%w: height must be >= 0 (got %d)", ErrInvalid, cfg.App.Height)
	}
	if cfg.App.PageSize < 1 {
		return fmt.Errorf("%w: page-size must be >= 1 (got %d)", ErrInvalid, cfg.App.PageSize)
	}
	if cfg.App.PageInterval < 0 {
		return fmt.Errorf("%w: page-interval must be >= 0 (got %s)", ErrInvalid, cfg.App.PageInterval)
	}
	return nil
}

// This file maps defaults, the optional TOML config file and CLI flags onto
// the launcher's Config struct.

package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/urfave/cli.v1"
)

// Config aggregates every setting the launcher needs.
type Config struct {
	Chain   ChainConfig
	Output  OutputConfig
	Logging LoggingConfig
	Sentry  SentryConfig
}

type ChainConfig struct {
	Preset    string
	Runtime   string
	Bootnodes []string
}

type OutputConfig struct {
	Path   string
	Pretty bool
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
}

type SentryConfig struct {
	DSN string
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Chain: ChainConfig{
			Preset:    d.Chain.Preset,
			Runtime:   d.Chain.Runtime,
			Bootnodes: d.Chain.Bootnodes,
		},
		Output: OutputConfig{
			Path:   d.Output.Path,
			Pretty: d.Output.Pretty,
		},
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
		},
		Sentry: SentryConfig{
			DSN: d.Sentry.DSN,
		},
	}
}

// MakeAllConfigs merges defaults, config-file values, and CLI overrides into
// a single config struct.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.GlobalString("config"); file != "" {
		if err := loadConfigFile(file, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings no command can work with.
func (c Config) Validate() error {
	if c.Logging.Verbosity < 0 || c.Logging.Verbosity > 5 {
		return fmt.Errorf("log verbosity %d out of range 0..5", c.Logging.Verbosity)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

func loadConfigFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown fields: %s", strings.Join(keys, ", "))
	}
	if cfg.Chain.Runtime != "" {
		cfg.Chain.Runtime = resolvePathFrom(filepath.Dir(path), cfg.Chain.Runtime)
	}
	if cfg.Output.Path != "" {
		cfg.Output.Path = resolvePathFrom(filepath.Dir(path), cfg.Output.Path)
	}
	return nil
}

// isSet reports whether the flag was given on the command line, either before
// or after the command name.
func isSet(ctx *cli.Context, name string) bool {
	return ctx.IsSet(name) || ctx.GlobalIsSet(name)
}

func stringFlag(ctx *cli.Context, name string) string {
	if ctx.IsSet(name) {
		return ctx.String(name)
	}
	return ctx.GlobalString(name)
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if isSet(ctx, "chain") {
		cfg.Chain.Preset = stringFlag(ctx, "chain")
	}
	if isSet(ctx, "runtime") {
		cfg.Chain.Runtime = resolvePath(stringFlag(ctx, "runtime"))
	}
	if isSet(ctx, "bootnodes") {
		cfg.Chain.Bootnodes = splitCSV(stringFlag(ctx, "bootnodes"))
	}

	if isSet(ctx, "output") {
		cfg.Output.Path = resolvePath(stringFlag(ctx, "output"))
	}
	if ctx.Bool("pretty") || ctx.GlobalBool("pretty") {
		cfg.Output.Pretty = true
	}

	if ctx.GlobalIsSet("log.format") {
		cfg.Logging.Format = ctx.GlobalString("log.format")
	}
	if ctx.GlobalIsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.GlobalInt("log.verbosity")
	}
	if ctx.GlobalIsSet("log.color") {
		cfg.Logging.Color = ctx.GlobalBool("log.color")
	}
	if ctx.GlobalIsSet("sentry.dsn") {
		cfg.Sentry.DSN = ctx.GlobalString("sentry.dsn")
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func resolvePath(p string) string {
	return resolvePathFrom(GuessWorkDir(), p)
}

func resolvePathFrom(base, p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func splitCSV(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/course-sidebar/internal/app"
	"github.com/atomicstack/course-sidebar/internal/content"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid marks configuration errors. Callers exit with status 2 on it.
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ConfigFile string
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix = "COURSE_SIDEBAR_"

	keyCatalog        = "catalog"
	keyWidth          = "width"
	keyHeight         = "height"
	keySidebarWidth   = "sidebar-width"
	keyExclusiveDepth = "exclusive-depth"
	keyEmptyContent   = "empty-content"
	keyContentStyle   = "content-style"
	keyFooter         = "footer"
	keyMouse          = "mouse"
	keyTrace          = "trace"
	keyLogFile        = "log-file"
	keyConfig         = "config"

	defaultSidebarWidth   = 32
	defaultExclusiveDepth = 1
	defaultLogFile        = "course-sidebar.log"
)

var (
	intKeys    = []string{keyWidth, keyHeight, keySidebarWidth, keyExclusiveDepth}
	boolKeys   = []string{keyFooter, keyMouse, keyTrace}
	stringKeys = []string{keyCatalog, keyEmptyContent, keyContentStyle, keyLogFile}
)

// Bind registers every option on fs with its built-in default.
func Bind(fs *pflag.FlagSet) {
	fs.String(keyCatalog, "", "path to a catalog file (.yaml, .yml, .json or .toml); empty uses the built-in catalog")
	fs.Int(keyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Int(keySidebarWidth, defaultSidebarWidth, "sidebar width in cells")
	fs.Int(keyExclusiveDepth, defaultExclusiveDepth, "branches above this depth open one at a time (0 disables)")
	fs.String(keyEmptyContent, string(content.DefaultEmptyMode), "what to show for a selection without content: notice, placeholder or blank")
	fs.String(keyContentStyle, content.DefaultStyle, "glamour style for the content pane ("+strings.Join(content.Styles(), ", ")+")")
	fs.Bool(keyFooter, false, "enable footer hint row (disabled by default)")
	fs.Bool(keyMouse, true, "enable mouse support")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.String(keyLogFile, defaultLogFile, "path to the log file")
	fs.String(keyConfig, "", "settings file (.toml, .yaml or .json) read before environment and flags")
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("course-sidebar", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return Resolve(fs, args, environ)
}

// Resolve layers the sources for a parsed flag set. Precedence is flag, then
// environment, then settings file, then the built-in default.
func Resolve(fs *pflag.FlagSet, args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	v := viper.New()

	configFile := env[envKey(keyConfig)]
	if flag := fs.Lookup(keyConfig); flag != nil && flag.Changed {
		configFile = flag.Value.String()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %v", ErrInvalid, configFile, err)
		}
	}

	for _, key := range intKeys {
		raw, ok := env[envKey(key)]
		if !ok || strings.TrimSpace(raw) == "" || changed(fs, key) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, envKey(key), raw)
		}
		v.Set(key, n)
	}
	for _, key := range boolKeys {
		raw, ok := env[envKey(key)]
		if !ok || strings.TrimSpace(raw) == "" || changed(fs, key) {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, envKey(key), raw)
		}
		v.Set(key, b)
	}
	for _, key := range stringKeys {
		if raw, ok := env[envKey(key)]; ok && !changed(fs, key) {
			v.Set(key, raw)
		}
	}
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:    v.GetString(keyCatalog),
			Width:          v.GetInt(keyWidth),
			Height:         v.GetInt(keyHeight),
			SidebarWidth:   v.GetInt(keySidebarWidth),
			ExclusiveDepth: v.GetInt(keyExclusiveDepth),
			EmptyContent:   v.GetString(keyEmptyContent),
			ContentStyle:   v.GetString(keyContentStyle),
			ShowFooter:     v.GetBool(keyFooter),
			Mouse:          v.GetBool(keyMouse),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		ConfigFile: configFile,
		Args:       append([]string(nil), args...),
	}
	cfg.Flags = map[string]string{
		keyCatalog:        cfg.App.CatalogPath,
		keyWidth:          strconv.Itoa(cfg.App.Width),
		keyHeight:         strconv.Itoa(cfg.App.Height),
		keySidebarWidth:   strconv.Itoa(cfg.App.SidebarWidth),
		keyExclusiveDepth: strconv.Itoa(cfg.App.ExclusiveDepth),
		keyEmptyContent:   cfg.App.EmptyContent,
		keyContentStyle:   cfg.App.ContentStyle,
		keyFooter:         strconv.FormatBool(cfg.App.ShowFooter),
		keyMouse:          strconv.FormatBool(cfg.App.Mouse),
		keyConfig:         configFile,
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func changed(fs *pflag.FlagSet, key string) bool {
	flag := fs.Lookup(key)
	return flag != nil && flag.Changed
}

func envKey(key string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
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

// Validate rejects values the UI cannot honour.
func Validate(cfg Config) error {
	sizes := []struct {
		name  string
		value int
	}{
		{keyWidth, cfg.App.Width},
		{keyHeight, cfg.App.Height},
		{keySidebarWidth, cfg.App.SidebarWidth},
		{keyExclusiveDepth, cfg.App.ExclusiveDepth},
	}
	for _, size := range sizes {
		if size.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0 (got %d)", ErrInvalid, size.name, size.value)
		}
	}
	if _, err := content.ParseEmptyMode(cfg.App.EmptyContent); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if style := strings.TrimSpace(cfg.App.ContentStyle); style != "" && !content.ValidStyle(style) {
		return fmt.Errorf("%w: unknown content style %q", ErrInvalid, style)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlanticdynamic/crlauncher/internal/config/errz"
	"github.com/atlanticdynamic/crlauncher/internal/config/keys"
	"github.com/atlanticdynamic/crlauncher/internal/config/loader"
	"github.com/atlanticdynamic/crlauncher/internal/interpolation"
)

// File names looked up next to the launcher when no path is given.
var (
	ConfigFileNames = []string{"cr.toml", "cr.yaml", "cr.yml"}
	EnvFileName     = "cr.env"
)

// LoadOptions controls where Load looks for its layers.
type LoadOptions struct {
	// ConfigPath names the config file. Empty falls back to
	// CR_LAUNCHER_CONFIG, then to discovery in SearchDir.
	ConfigPath string
	// EnvFilePath names the dotenv overlay. Empty falls back to
	// CR_LAUNCHER_ENV_FILE, then to discovery in SearchDir.
	EnvFilePath string
	// SearchDir is usually the launcher's resolved directory. Empty
	// disables discovery.
	SearchDir string
	// Environ is the invoking environment in KEY=VALUE form. Nil reads
	// the process environment.
	Environ []string
}

// Load builds a Config from defaults, the config file, the dotenv overlay and
// the invoking environment, in that order of precedence.
func Load(opts LoadOptions) (Config, error) {
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	env := EnvironMap(environ)

	layers := make([]layer, 0, 3)

	configPath := firstNonEmpty(opts.ConfigPath, env[keys.LauncherConfig])
	if configPath == "" {
		configPath = Locate(opts.SearchDir, ConfigFileNames...)
	}
	if configPath != "" {
		values, err := loader.LoadFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
		}
		if err := interpolation.ExpandMap(values, interpolation.MapLookup(env)); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", errz.ErrFailedToLoadConfig, configPath, err)
		}
		layers = append(layers, layer{source: SourceFile, values: values})
	}

	envFilePath := firstNonEmpty(opts.EnvFilePath, env[keys.LauncherEnvFile])
	if envFilePath == "" {
		envFilePath = Locate(opts.SearchDir, EnvFileName)
	}
	if envFilePath != "" {
		values, err := loader.LoadDotEnv(envFilePath)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
		}
		layers = append(layers, layer{source: SourceDotEnv, values: values})
	}

	layers = append(layers, layer{source: SourceEnvironment, values: env})

	cfg, err := fromLayers(layers)
	if err != nil {
		return Config{}, err
	}
	cfg.ConfigPath = configPath
	cfg.EnvFilePath = envFilePath
	return cfg, nil
}

// NewConfigFromBytes builds a Config from defaults and a single config
// document. ext selects the format (".toml", ".yaml", ".yml").
func NewConfigFromBytes(data []byte, ext string) (Config, error) {
	loadFunc, err := loader.ForExtension(ext)
	if err != nil {
		return Config{}, err
	}
	l, err := loader.NewLoaderFromBytes(data, loadFunc)
	if err != nil {
		return Config{}, err
	}
	doc, err := l.LoadDocument()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	values, err := doc.Values()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	if err := interpolation.ExpandMap(values, nil); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	return fromLayers([]layer{{source: SourceFile, values: values}})
}

// fromLayers starts from Default, selects the backend from the last layer
// that names one, then applies every layer in order.
func fromLayers(layers []layer) (Config, error) {
	cfg := Default()

	kind := DefaultBackend
	for _, l := range layers {
		raw, ok := l.values[keys.LauncherVCSBackend]
		if !ok {
			continue
		}
		k, err := ParseBackendKind(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s (from %s): %w", errz.ErrFailedToLoadConfig, keys.LauncherVCSBackend, l.source, err)
		}
		kind = k
		cfg.sources[keys.LauncherVCSBackend] = l.source
	}
	cfg.VCS = newBackend(kind)

	for _, l := range layers {
		if err := applyLayer(&cfg, l); err != nil {
			return Config{}, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
		}
	}

	mode, err := ParseMode(string(cfg.Companion.Mode))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", errz.ErrFailedToLoadConfig, keys.LauncherMode, err)
	}
	cfg.Companion.Mode = mode

	return cfg, nil
}

// ParseMode accepts "posix" and "legacy"; empty selects the default.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultMode, nil
	case ModePosix:
		return ModePosix, nil
	case ModeLegacy:
		return ModeLegacy, nil
	}
	return "", fmt.Errorf("%w: %q", errz.ErrInvalidMode, s)
}

// Locate returns the first of names that exists as a regular file in dir,
// or "" when none does.
func Locate(dir string, names ...string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// EnvironMap turns KEY=VALUE pairs into a map. Later duplicates win and
// entries without '=' are skipped.
func EnvironMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	return m
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

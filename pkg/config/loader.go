package config

import (
	_ "embed"
	stderrors "errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/swman/pkg/errors"
	"github.com/arthur-debert/swman/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "SWMAN_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultsContent returns the embedded defaults file
func DefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options controls where configuration is read from
type Options struct {
	// Path is an explicit config file. It must exist when set.
	Path string
	// SkipUserFile ignores the default user config file
	SkipUserFile bool
	// SkipEnv ignores SWMAN_* environment variables
	SkipEnv bool
	// Overrides are applied last, keyed by dotted path ("check.timeout")
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	known := k.MapKeys("managers")

	// 2. User file
	path, required := userConfigPath(opts)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
		} else if required || !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	if err := checkManagerNames(k.MapKeys("managers"), known); err != nil {
		return nil, err
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded defaults only
func Default() *Config {
	cfg, err := Load(Options{SkipUserFile: true, SkipEnv: true})
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

func userConfigPath(opts Options) (string, bool) {
	if opts.Path != "" {
		return paths.ExpandHome(opts.Path), true
	}
	if opts.SkipUserFile {
		return "", false
	}
	return paths.ConfigFilePath(), false
}

// checkManagerNames rejects manager sections the defaults do not declare.
// It runs before value validation so a misspelt name is reported as such.
func checkManagerNames(names, known []string) error {
	declared := make(map[string]bool, len(known))
	for _, name := range known {
		declared[name] = true
	}
	sort.Strings(names)
	for _, name := range names {
		if !declared[name] {
			return errors.Newf(errors.ErrConfigValid, "unknown manager %q in configuration", name).
				WithDetail("manager", name)
		}
	}
	return nil
}

// envKey maps SWMAN_MANAGERS__YAY__UPDATE_TIMEOUT to managers.yay.update_timeout
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// Package config loads the CLI tool's own settings: embedded defaults,
// an optional propstore.toml, and PROPSTORE_-prefixed environment
// variables, merged in that order.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	properr "github.com/arthur-debert/propstore/pkg/errors"
	"github.com/arthur-debert/propstore/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ConfigFileName is the optional on-disk settings file
const ConfigFileName = "propstore.toml"

// EnvPrefix namespaces the environment variable overrides
const EnvPrefix = "PROPSTORE_"

// Config holds the CLI tool's settings
type Config struct {
	// IncludePath lists extra directories searched when resolving a
	// property file path, in order, before the built-in defaults.
	IncludePath []string `koanf:"include_path"`

	Export ExportConfig `koanf:"export"`
}

// ExportConfig holds export command settings
type ExportConfig struct {
	Format string `koanf:"format"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the effective configuration
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, properr.Wrap(err, properr.ErrConfigLoad, "failed to load defaults")
	}

	// 2. First propstore.toml found: current directory, then XDG config dir
	for _, dir := range []string{".", filepath.Join(xdg.ConfigHome, paths.AppDirName)} {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, properr.Wrapf(err, properr.ErrConfigLoad, "failed to load config from %s", path)
		}
		break
	}

	// 3. Env vars: PROPSTORE_INCLUDE_PATH, PROPSTORE_EXPORT__FORMAT, ...
	// A double underscore separates nesting levels.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, properr.Wrap(err, properr.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, properr.Wrap(err, properr.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

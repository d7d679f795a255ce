package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/paths"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/fileutil"
)

// EnvPrefix prefixes environment variables overriding config keys.
const EnvPrefix = "EXTRA_PLATFORMS"

// Config represents the top-level configuration structure.
type Config struct {
	Version    int      `mapstructure:"version" json:"version" yaml:"version" toml:"version"`
	Format     string   `mapstructure:"format" json:"format" yaml:"format" toml:"format"`
	Color      string   `mapstructure:"color" json:"color" yaml:"color" toml:"color"`
	Categories []string `mapstructure:"categories" json:"categories" yaml:"categories" toml:"categories"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:    1,
		Format:     "text",
		Color:      "auto",
		Categories: []string{},
	}
}

// Init resets Viper and registers search paths, env binding and defaults.
// Call it once before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(strings.TrimSuffix(paths.ConfigFileName, ".yaml"))
	viper.SetConfigType("yaml")
	for _, dir := range paths.ConfigSearchPaths() {
		viper.AddConfigPath(dir)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("format", def.Format)
	viper.SetDefault("color", def.Color)
	viper.SetDefault("categories", def.Categories)
}

// Load reads the configuration file. An explicit path must exist; with an
// empty path the search paths are tried and defaults apply when nothing is
// found. The result is validated.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
		case errors.As(err, &notFound):
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		case path != "" && errors.Is(err, os.ErrNotExist):
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		default:
			return nil, errors.Mark(errors.Wrap(err, "reading config file"), errors.ErrInvalidConfig)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return nil, errors.Mark(errors.Newf("validating config: %s", strings.Join(msgs, "; ")), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// FileUsed returns the path of the loaded config file, or "" when defaults
// are in effect.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Save validates cfg and writes it to path, creating the directory.
func Save(path string, cfg *Config) error {
	if errs := Validate(cfg); len(errs) > 0 {
		return errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}
	return errors.Wrap(fileutil.AtomicWriteYAML(path, cfg, 0o644), "writing config")
}

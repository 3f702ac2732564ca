// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/SweetiePi/bioncd-hackseq/internal/compress"
	"github.com/SweetiePi/bioncd-hackseq/internal/ncd"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables that override settings,
	// ex: BIONCD_ALGORITHM=lzma
	EnvPrefix = "BIONCD"

	// DefaultAlgorithm is the compressor used when none is set
	DefaultAlgorithm = compress.Gzip
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment,
// and the command line
type Config struct {
	// Algorithm is the name of the compressor
	Algorithm string `mapstructure:"algorithm"`

	// ReverseComplement sequences before compressing them
	ReverseComplement bool `mapstructure:"reverse-complement"`

	// BWT is whether to Burrows-Wheeler transform sequences before compressing them
	BWT bool `mapstructure:"bwt"`

	// SaveDir is a directory to write compressed sequences to
	SaveDir string `mapstructure:"save-dir"`

	// Measure is the compressed size convention: "stream" or "pyobject"
	Measure string `mapstructure:"measure"`

	// Workers is the number of comparisons to run at once in a corpus
	Workers int `mapstructure:"workers"`

	// Verbose is whether to log sizes and timing
	Verbose bool `mapstructure:"verbose"`
}

func init() {
	SetDefaults(viper.GetViper())
}

// SetDefaults sets the default settings and environment lookup on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("algorithm", string(DefaultAlgorithm))
	v.SetDefault("reverse-complement", false)
	v.SetDefault("bwt", false)
	v.SetDefault("save-dir", "")
	v.SetDefault("measure", string(compress.Stream))
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// New returns a new Config populated by the global Viper settings.
func New() (*Config, error) {
	return Load(viper.GetViper())
}

// Load returns a Config from a viper instance. If "settings" is set, it's the
// path to a settings file (YAML, JSON, TOML) that's read first.
func Load(v *viper.Viper) (*Config, error) {
	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &c, nil
}

// Options validates the settings and returns them as comparison options.
func (c *Config) Options() (ncd.Options, error) {
	alg, err := compress.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return ncd.Options{}, err
	}

	measure, err := compress.ParseMeasure(c.Measure)
	if err != nil {
		return ncd.Options{}, err
	}

	return ncd.Options{
		Algorithm:         alg,
		Measure:           measure,
		ReverseComplement: c.ReverseComplement,
		BWT:               c.BWT,
		SaveDir:           c.SaveDir,
	}, nil
}

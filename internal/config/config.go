package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	rustgen "github.com/jptrs93/proxygen/internal/generate/rust"
)

const (
	EnvPrefix   = "PROXYGEN"
	ProjectFile = "proxygen.toml"
)

type Config struct {
	Inputs []string  `mapstructure:"inputs"`
	OutDir string    `mapstructure:"out_dir"`
	Suffix string    `mapstructure:"suffix"`
	Log    LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("inputs", []string{})
	v.SetDefault("out_dir", "")
	v.SetDefault("suffix", rustgen.DefaultSuffix)
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// Init wires defaults, PROXYGEN_* environment variables and the config file
// into v. Without an explicit configFile, proxygen.toml is looked up from the
// working directory upward; finding none is not an error.
func Init(v *viper.Viper, fs afero.Fs, configFile string) error {
	v.SetFs(fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if configFile == "" {
		if wd, err := os.Getwd(); err == nil {
			configFile = FindProjectConfig(fs, wd)
		}
	}
	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", configFile)
	}
	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

// FindProjectConfig walks up from dir and returns the first proxygen.toml.
func FindProjectConfig(fs afero.Fs, dir string) string {
	for {
		path := filepath.Join(dir, ProjectFile)
		if ok, err := afero.Exists(fs, path); err == nil && ok {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

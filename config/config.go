package config

import (
	"encoding/json"

	"github.com/creasty/defaults"
	"github.com/shelfd-io/shelfd/config/modules"
	"github.com/shelfd-io/shelfd/config/options"
	"github.com/shelfd-io/shelfd/config/types"
	"github.com/shelfd-io/shelfd/utils"
	"gopkg.in/yaml.v3"
)

var _ types.Config = &Config{}

// Config Configuration
type Config struct {
	modules.BaseConfig `yaml:",inline" json:"-"`

	Log    modules.LogConfig `yaml:"log" json:"log"`
	Server Options           `yaml:"server" json:"server"`
}

func (cfg *Config) PostProcess() error {
	if cfg.Log.File == "" {
		cfg.Log.File = "/dev/stderr"
	}
	return nil
}

func (cfg Config) String() string {
	bytes, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func (cfg Config) YAML() string {
	bytes, err := yaml.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func (cfg Config) Validate() error {
	if err := cfg.Log.Validate(); err != nil {
		return err
	}
	if err := cfg.Server.Validate(); err != nil {
		return err
	}
	return nil
}

// New returns the configuration defaults of reg.
func New(reg *options.Registry) *Config {
	var cfg Config
	if err := defaults.Set(&cfg.Log); err != nil {
		panic(err)
	}
	cfg.Server = *utils.Must(NewOptions(reg, nil))
	return &cfg
}

package config

import (
	"github.com/shelfd-io/shelfd/config/options"
	"github.com/shelfd-io/shelfd/config/providers"
	"go.uber.org/zap"
)

const EnvPrefix = "SHELFD"

// Loader is configuration loader
type Loader struct {
	cfg         *Config
	registry    *options.Registry
	envPrefix   string
	env         map[string]string
	filename    string
	fileContent []byte
	overrides   map[string]any
	log         *zap.SugaredLogger
}

func NewLoader(reg *options.Registry, cfg *Config) *Loader {
	return &Loader{cfg: cfg, registry: reg, log: zap.NewNop().Sugar()}
}

func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

func (l *Loader) WithEnv(env map[string]string) *Loader {
	l.env = env
	return l
}

func (l *Loader) WithFilename(filename string) *Loader {
	l.filename = filename
	return l
}

func (l *Loader) WithFileContent(content []byte) *Loader {
	l.fileContent = content
	return l
}

// WithOverrides sets option values taking precedence over file and environment.
func (l *Loader) WithOverrides(overrides map[string]any) *Loader {
	l.overrides = overrides
	return l
}

func (l *Loader) WithLogger(log *zap.SugaredLogger) *Loader {
	if log != nil {
		l.log = log
	}
	return l
}

func (l *Loader) loadFile(module string, value any) error {
	if l.filename == "" && l.fileContent == nil {
		return nil
	}
	err := providers.NewYAMLProvider(l.filename, l.fileContent).
		WithKey(module).
		Load(value)
	if err != nil {
		return err
	}
	l.log.Debugw("applied configuration file", "section", module, "file", l.filename)
	return nil
}

func (l *Loader) envProvider(module string) *providers.EnvProvider {
	return providers.NewEnvProvider(l.envPrefix + "_" + module).WithEnv(l.env)
}

// Load layers file, environment and overrides onto the configuration, in that order.
func (l *Loader) Load() error {
	cfg := l.cfg
	if err := l.loadFile("log", &cfg.Log); err != nil {
		return err
	}
	if err := l.loadFile("server", &cfg.Server); err != nil {
		return err
	}

	if l.envPrefix != "" {
		if err := l.envProvider("log").Load(&cfg.Log); err != nil {
			return err
		}
		values := l.envProvider("server").Lookup(l.registry.Names())
		if err := cfg.Server.ApplyStrings(l.registry, values); err != nil {
			return err
		}
		l.log.Debugw("applied environment", "prefix", l.envPrefix, "count", len(values))
	}

	if len(l.overrides) > 0 {
		if err := cfg.Server.Apply(l.registry, l.overrides); err != nil {
			return err
		}
		l.log.Debugw("applied command-line overrides", "count", len(l.overrides))
	}

	return cfg.PostProcess()
}

// Load layers the default sources onto cfg using the default registry.
func Load(filename string, overrides map[string]any, cfg *Config, log *zap.SugaredLogger) error {
	return NewLoader(options.Default(), cfg).
		WithEnvPrefix(EnvPrefix).
		WithFilename(filename).
		WithOverrides(overrides).
		WithLogger(log).
		Load()
}

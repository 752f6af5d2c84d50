package providers

import (
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type EnvProvider struct {
	prefix string
	env    map[string]string
}

func NewEnvProvider(prefix string) *EnvProvider {
	return &EnvProvider{prefix: prefix}
}

func (p *EnvProvider) WithEnv(env map[string]string) *EnvProvider {
	p.env = env
	return p
}

func (p *EnvProvider) lookup(key string) (string, bool) {
	if p.env != nil {
		value, ok := p.env[key]
		return value, ok
	}
	return os.LookupEnv(key)
}

// Key returns the variable name of a configuration field.
func (p *EnvProvider) Key(name string) string {
	return strings.ToUpper(p.prefix + "_" + name)
}

// Lookup returns the values set in the environment for names.
func (p *EnvProvider) Lookup(names []string) map[string]string {
	values := make(map[string]string)
	for _, name := range names {
		if value, ok := p.lookup(p.Key(name)); ok {
			values[name] = value
		}
	}
	return values
}

// Load sets the top-level fields of cfg found in the environment.
// Values are converted to the field types.
func (p *EnvProvider) Load(cfg any) error {
	fields := make(map[string]any)
	if err := decode(cfg, &fields, false); err != nil {
		return err
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	values := p.Lookup(names)
	if len(values) == 0 {
		return nil
	}
	return decode(values, cfg, true)
}

func decode(input any, output any, weak bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           output,
		WeaklyTypedInput: weak,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

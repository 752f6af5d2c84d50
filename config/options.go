package config

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shelfd-io/shelfd/config/options"
	"github.com/shelfd-io/shelfd/utils"
)

const (
	AuthModeAuto   = "auto"
	AuthModeBasic  = "basic"
	AuthModeDigest = "digest"
)

// Options is the content server configuration, one field per registered option.
// Empty strings stand for options without a value.
type Options struct {
	AllowSocketPreallocation    bool    `yaml:"allow_socket_preallocation" json:"allow_socket_preallocation"`
	Auth                        bool    `yaml:"auth" json:"auth"`
	AuthMode                    string  `yaml:"auth_mode" json:"auth_mode" validate:"oneof=auto basic digest"`
	CompressMinSize             int     `yaml:"compress_min_size" json:"compress_min_size"`
	DisplayedFields             string  `yaml:"displayed_fields" json:"displayed_fields"`
	FallbackToDetectedInterface bool    `yaml:"fallback_to_detected_interface" json:"fallback_to_detected_interface"`
	IgnoredFields               string  `yaml:"ignored_fields" json:"ignored_fields"`
	ListenOn                    string  `yaml:"listen_on" json:"listen_on"`
	LogNotFound                 bool    `yaml:"log_not_found" json:"log_not_found"`
	MaxHeaderLineSize           float64 `yaml:"max_header_line_size" json:"max_header_line_size"`
	MaxLogSize                  int     `yaml:"max_log_size" json:"max_log_size"`
	MaxOpdsItems                int     `yaml:"max_opds_items" json:"max_opds_items"`
	MaxOpdsUngroupedItems       int     `yaml:"max_opds_ungrouped_items" json:"max_opds_ungrouped_items"`
	MaxRequestBodySize          float64 `yaml:"max_request_body_size" json:"max_request_body_size"`
	Port                        int     `yaml:"port" json:"port"`
	ShutdownTimeout             float64 `yaml:"shutdown_timeout" json:"shutdown_timeout"`
	SSLCertfile                 string  `yaml:"ssl_certfile" json:"ssl_certfile"`
	SSLKeyfile                  string  `yaml:"ssl_keyfile" json:"ssl_keyfile"`
	Timeout                     float64 `yaml:"timeout" json:"timeout"`
	URLPrefix                   string  `yaml:"url_prefix" json:"url_prefix"`
	UseBonjour                  bool    `yaml:"use_bonjour" json:"use_bonjour"`
	UseSendfile                 bool    `yaml:"use_sendfile" json:"use_sendfile"`
	Userdb                      string  `yaml:"userdb" json:"userdb"`
	WorkerCount                 int     `yaml:"worker_count" json:"worker_count"`
}

// NewOptions returns the registry defaults with overrides applied.
// Overrides for names outside the registry are ignored. A nil override is
// only accepted for options without a default value.
func NewOptions(reg *options.Registry, overrides map[string]any) (*Options, error) {
	opts := &Options{}
	if err := opts.decode(reg.Defaults(), false); err != nil {
		return nil, err
	}
	if err := opts.Apply(reg, overrides); err != nil {
		return nil, err
	}
	return opts, nil
}

// NewOptionsStrict is NewOptions rejecting overrides for unknown names.
func NewOptionsStrict(reg *options.Registry, overrides map[string]any) (*Options, error) {
	if unknown := unknownNames(reg, overrides); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown options: %s", strings.Join(unknown, ", "))
	}
	return NewOptions(reg, overrides)
}

// Apply sets the fields named in overrides. On error o is left unchanged.
func (o *Options) Apply(reg *options.Registry, overrides map[string]any) error {
	values, err := known(reg, overrides)
	if err != nil {
		return err
	}
	return o.commit(values, false)
}

// ApplyStrings sets the fields named in values, converting strings to the field types.
func (o *Options) ApplyStrings(reg *options.Registry, values map[string]string) error {
	filtered, err := known(reg, values)
	if err != nil {
		return err
	}
	return o.commit(filtered, true)
}

func (o *Options) commit(values map[string]any, weak bool) error {
	c := o.Clone()
	if err := c.decode(values, weak); err != nil {
		return err
	}
	*o = *c
	return nil
}

func (o *Options) decode(values map[string]any, weak bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           o,
		ErrorUnused:      true,
		WeaklyTypedInput: weak,
		DecodeHook:       wholeNumberHook,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}

// wholeNumberHook rejects floats with a fractional part for integer fields.
func wholeNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f := reflect.ValueOf(data).Float()
		if math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, fmt.Errorf("'%v' is not an integer", data)
		}
	}
	return data, nil
}

func known[V any](reg *options.Registry, values map[string]V) (map[string]any, error) {
	filtered := make(map[string]any, len(values))
	for name, v := range values {
		opt, ok := reg.Get(name)
		if !ok {
			continue
		}
		var value any = v
		if value == nil {
			if opt.Kind() != options.KindNull {
				return nil, fmt.Errorf("option '%s' of type %s cannot be nil", name, opt.Kind())
			}
			value = ""
		}
		filtered[name] = value
	}
	return filtered, nil
}

func unknownNames(reg *options.Registry, values map[string]any) []string {
	var unknown []string
	for name := range values {
		if _, ok := reg.Get(name); !ok {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// Map returns the value of every option keyed by name. Options without a
// value map to nil.
func (o *Options) Map(reg *options.Registry) map[string]any {
	values := make(map[string]any)
	decoder := utils.Must(mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &values,
	}))
	if err := decoder.Decode(o); err != nil {
		panic(err)
	}
	m := make(map[string]any, reg.Len())
	for _, opt := range reg.Options() {
		v := values[opt.Name]
		if opt.Kind() == options.KindNull && v == "" {
			v = nil
		}
		m[opt.Name] = v
	}
	return m
}

func (o *Options) Clone() *Options {
	c := *o
	return &c
}

func (o Options) Validate() error {
	return utils.Validate(o)
}

func (o Options) SSLEnabled() bool {
	return o.SSLCertfile != "" && o.SSLKeyfile != ""
}

// EffectiveAuthMode resolves "auto" to basic over SSL and digest otherwise.
func (o Options) EffectiveAuthMode() string {
	if o.AuthMode != AuthModeAuto {
		return o.AuthMode
	}
	if o.SSLEnabled() {
		return AuthModeBasic
	}
	return AuthModeDigest
}

func (o Options) ListenAddr() string {
	return utils.JoinHostPort(o.ListenOn, o.Port)
}

func (o Options) URL() string {
	return utils.ListenAddrToURL(o.SSLEnabled(), o.ListenAddr()) + o.URLPrefix
}

func (o Options) IdleTimeout() time.Duration {
	return utils.DurationS(o.Timeout)
}

func (o Options) ShutdownDuration() time.Duration {
	return utils.DurationS(o.ShutdownTimeout)
}

func (o Options) MaxHeaderLineBytes() int64 {
	return utils.KiB(o.MaxHeaderLineSize)
}

func (o Options) MaxRequestBodyBytes() int64 {
	return utils.MiB(o.MaxRequestBodySize)
}

// MaxLogBytes returns 0 when log rotation is disabled.
func (o Options) MaxLogBytes() int64 {
	return utils.MiB(float64(o.MaxLogSize))
}

func (o Options) IgnoredFieldList() []string {
	return splitFields(o.IgnoredFields)
}

func (o Options) DisplayedFieldList() []string {
	return splitFields(o.DisplayedFields)
}

func splitFields(s string) []string {
	fields := make([]string, 0)
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

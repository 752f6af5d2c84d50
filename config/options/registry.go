package options

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// fields per table record: shortdoc, name, default, longdoc
const arity = 4

var (
	ErrMalformedTable  = errors.New("malformed option table")
	ErrDuplicateOption = errors.New("duplicate option")
)

// Registry is the name-sorted collection of options.
type Registry struct {
	options []Option
	index   map[string]int
}

// Build groups a flat option table into options sorted by name.
func Build(table []any) (*Registry, error) {
	if len(table)%arity != 0 {
		return nil, fmt.Errorf("%w: %d entries is not a multiple of %d", ErrMalformedTable, len(table), arity)
	}

	opts := make([]Option, 0, len(table)/arity)
	for i := 0; i < len(table); i += arity {
		opt, err := newOption(table[i : i+arity])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %s", ErrMalformedTable, i/arity, err)
		}
		opts = append(opts, opt)
	}

	slices.SortStableFunc(opts, func(a, b Option) int {
		return strings.Compare(a.Name, b.Name)
	})

	index := make(map[string]int, len(opts))
	for i, opt := range opts {
		if _, ok := index[opt.Name]; ok {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateOption, opt.Name)
		}
		index[opt.Name] = i
	}

	return &Registry{options: opts, index: index}, nil
}

func MustBuild(table []any) *Registry {
	r, err := Build(table)
	if err != nil {
		panic(err)
	}
	return r
}

func newOption(record []any) (Option, error) {
	shortdoc, ok := record[0].(string)
	if !ok || shortdoc == "" {
		return Option{}, errors.New("shortdoc must be a non-empty string")
	}
	name, ok := record[1].(string)
	if !ok || name == "" {
		return Option{}, errors.New("name must be a non-empty string")
	}
	var longdoc string
	if record[3] != nil {
		if longdoc, ok = record[3].(string); !ok {
			return Option{}, fmt.Errorf("option '%s': longdoc must be a string", name)
		}
	}

	opt := Option{
		Name:     name,
		ShortDoc: shortdoc,
		LongDoc:  longdoc,
	}
	switch v := record[2].(type) {
	case Choices:
		opt.Choices = v.Sorted()
		opt.Default = v.Default()
	case nil, bool, int, float64, string:
		opt.Default = v
	default:
		return Option{}, fmt.Errorf("option '%s': unsupported default type %T", name, v)
	}
	return opt, nil
}

// Options returns the options in name order.
func (r *Registry) Options() []Option {
	return slices.Clone(r.options)
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.options))
	for i, opt := range r.options {
		names[i] = opt.Name
	}
	return names
}

func (r *Registry) Get(name string) (Option, bool) {
	i, ok := r.index[name]
	if !ok {
		return Option{}, false
	}
	return r.options[i], true
}

func (r *Registry) Len() int {
	return len(r.options)
}

// Defaults returns the default value of every option keyed by name.
func (r *Registry) Defaults() map[string]any {
	defaults := make(map[string]any, len(r.options))
	for _, opt := range r.options {
		defaults[opt.Name] = opt.Default
	}
	return defaults
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustBuild(table)
})

// Default returns the registry of the content server options.
// It panics if the built-in table is malformed.
func Default() *Registry {
	return defaultRegistry()
}

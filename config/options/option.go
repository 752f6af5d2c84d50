package options

import (
	"slices"
	"strings"
)

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindChoice
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindChoice:
		return "choice"
	default:
		return "null"
	}
}

// Option is one configurable server parameter.
type Option struct {
	Name     string
	Default  any
	ShortDoc string
	LongDoc  string
	Choices  []string
}

func (o Option) Kind() Kind {
	if o.Choices != nil {
		return KindChoice
	}
	switch o.Default.(type) {
	case bool:
		return KindBool
	case int:
		return KindInt
	case float64:
		return KindFloat
	case string:
		return KindString
	default:
		return KindNull
	}
}

// FlagName returns the option name as used on the command line.
func (o Option) FlagName() string {
	return strings.ReplaceAll(o.Name, "_", "-")
}

// Choices declares an enumerated default. The first value is the default.
type Choices struct {
	values []string
}

func NewChoices(values ...string) Choices {
	if len(values) == 0 {
		panic("options: choices require at least one value")
	}
	return Choices{values: slices.Clone(values)}
}

func (c Choices) Default() string {
	return c.values[0]
}

func (c Choices) Sorted() []string {
	sorted := slices.Clone(c.values)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

func (c Choices) Contains(v string) bool {
	return slices.Contains(c.values, v)
}

// HelpText renders the command-line help of an option.
func HelpText(opt Option) string {
	help := opt.ShortDoc
	if !strings.HasSuffix(help, ".") {
		help += "."
	}
	if opt.LongDoc != "" {
		help += "\n\t" + opt.LongDoc
	}
	return help
}

package options

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// DestAnnotation is the flag annotation holding the option name a flag writes to.
const DestAnnotation = "dest"

type binding struct {
	opt   Option
	flags []string
	value func() any
}

// Parser is the command-line projection of a registry.
type Parser struct {
	usage    string
	flags    *pflag.FlagSet
	bindings []binding
}

// NewParser declares one or two flags per option of reg, in name order.
func NewParser(reg *Registry, usage string) *Parser {
	fs := pflag.NewFlagSet("shelfd", pflag.ContinueOnError)
	fs.SortFlags = false
	p := &Parser{usage: usage, flags: fs}
	fs.Usage = func() {
		p.PrintUsage(os.Stderr)
	}

	for _, opt := range reg.Options() {
		help := HelpText(opt)
		name := opt.FlagName()
		var b binding
		switch opt.Kind() {
		case KindBool:
			b = p.toggle(opt, name, help)
		case KindChoice:
			v := &choiceValue{value: opt.Default.(string), choices: opt.Choices}
			fs.Var(v, name, help)
			b = binding{flags: []string{name}, value: func() any { return v.value }}
		case KindInt:
			v := fs.Int(name, opt.Default.(int), help)
			b = binding{flags: []string{name}, value: func() any { return *v }}
		case KindFloat:
			v := fs.Float64(name, opt.Default.(float64), help)
			b = binding{flags: []string{name}, value: func() any { return *v }}
		case KindString:
			v := fs.String(name, opt.Default.(string), help)
			b = binding{flags: []string{name}, value: func() any { return *v }}
		default:
			v := fs.String(name, "", help)
			flag := fs.Lookup(name)
			b = binding{flags: []string{name}, value: func() any {
				if !flag.Changed {
					return nil
				}
				return *v
			}}
		}
		b.opt = opt
		for _, flag := range b.flags {
			_ = fs.SetAnnotation(flag, DestAnnotation, []string{opt.Name})
		}
		p.bindings = append(p.bindings, b)
	}

	return p
}

func (p *Parser) toggle(opt Option, name string, help string) binding {
	state := &toggleState{value: opt.Default.(bool)}
	enable, disable := "enable-"+name, "disable-"+name
	p.flags.VarPF(&toggleValue{state: state, positive: true}, enable, "", help).NoOptDefVal = "true"
	p.flags.VarPF(&toggleValue{state: state, positive: false}, disable, "", help).NoOptDefVal = "true"
	return binding{flags: []string{enable, disable}, value: func() any { return state.value }}
}

func (p *Parser) FlagSet() *pflag.FlagSet {
	return p.flags
}

func (p *Parser) Usage() string {
	return p.usage
}

func (p *Parser) PrintUsage(w io.Writer) {
	if p.usage != "" {
		fmt.Fprintln(w, p.usage)
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, p.flags.FlagUsages())
}

// Parse parses args and checks the parsed flags for conflicts.
func (p *Parser) Parse(args []string) error {
	if err := p.flags.Parse(args); err != nil {
		return err
	}
	return p.Check()
}

// Check reports an enable/disable pair used together.
func (p *Parser) Check() error {
	for _, b := range p.bindings {
		if len(b.flags) == 2 && p.changed(b.flags[0]) && p.changed(b.flags[1]) {
			return fmt.Errorf("flags --%s and --%s are mutually exclusive", b.flags[0], b.flags[1])
		}
	}
	return nil
}

func (p *Parser) Args() []string {
	return p.flags.Args()
}

// Values returns the value of every destination, defaults included.
func (p *Parser) Values() map[string]any {
	values := make(map[string]any, len(p.bindings))
	for _, b := range p.bindings {
		values[b.opt.Name] = b.value()
	}
	return values
}

// Overrides returns the destinations set on the command line.
func (p *Parser) Overrides() map[string]any {
	overrides := make(map[string]any)
	for _, b := range p.bindings {
		if slices.ContainsFunc(b.flags, p.changed) {
			overrides[b.opt.Name] = b.value()
		}
	}
	return overrides
}

func (p *Parser) changed(name string) bool {
	flag := p.flags.Lookup(name)
	return flag != nil && flag.Changed
}

// Dest returns the option name a flag writes to.
func Dest(flag *pflag.Flag) string {
	if dest := flag.Annotations[DestAnnotation]; len(dest) > 0 {
		return dest[0]
	}
	return ""
}

type choiceValue struct {
	value   string
	choices []string
}

func (v *choiceValue) String() string { return v.value }

func (v *choiceValue) Set(s string) error {
	if !slices.Contains(v.choices, s) {
		return fmt.Errorf("invalid choice: '%s' (choose from %s)", s, strings.Join(v.choices, ", "))
	}
	v.value = s
	return nil
}

func (v *choiceValue) Type() string {
	return "{" + strings.Join(v.choices, ",") + "}"
}

type toggleState struct {
	value bool
}

// toggleValue is one side of an --enable-x/--disable-x pair.
type toggleValue struct {
	state    *toggleState
	positive bool
}

func (v *toggleValue) String() string {
	if v.state == nil {
		return "false"
	}
	return strconv.FormatBool(v.state.value == v.positive)
}

func (v *toggleValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v.state.value = b == v.positive
	return nil
}

func (v *toggleValue) Type() string {
	return "bool"
}

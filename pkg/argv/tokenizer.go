package argv

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// HelpFlag is defined on every tokenizer so that --help never fails parsing.
const HelpFlag = "help"

// Tokenizer turns raw process arguments into Args using a pflag.FlagSet.
// Flag definitions live on the set returned by Flags.
type Tokenizer struct {
	name  string
	usage string
	flags *pflag.FlagSet
}

func NewTokenizer(name string) *Tokenizer {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetInterspersed(true)
	// usage is rendered by Help, pflag must stay quiet on errors
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	fs.BoolP(HelpFlag, "h", false, "show help")

	return &Tokenizer{
		name:  name,
		flags: fs,
	}
}

func (t *Tokenizer) Name() string {
	return t.name
}

// Flags returns the set flags are defined on. Parse swaps in fresh values
// for slice and map flags, so read those from Args rather than through the
// pointer the definer returned.
func (t *Tokenizer) Flags() *pflag.FlagSet {
	return t.flags
}

func (t *Tokenizer) SetUsage(usage string) {
	t.usage = usage
}

// Parse resets every flag to its default, parses raw and snapshots the result.
// The returned Args does not share state with the tokenizer.
func (t *Tokenizer) Parse(raw []string) (*Args, error) {
	if err := t.reset(); err != nil {
		return nil, err
	}

	if err := t.flags.Parse(raw); err != nil {
		return nil, err
	}

	args := &Args{
		Raw:        clone(raw),
		Positional: clone(t.flags.Args()),
		values:     make(map[string]string),
		changed:    make(map[string]bool),
	}
	t.flags.VisitAll(func(f *pflag.Flag) {
		args.values[f.Name] = f.Value.String()
		if f.Changed {
			args.changed[f.Name] = true
		}
	})
	return args, nil
}

// Help renders the usage banner: the usage line followed by the flag table.
func (t *Tokenizer) Help() string {
	var parts []string
	if t.usage != "" {
		parts = append(parts, t.usage)
	}

	if usages := strings.TrimRight(t.flags.FlagUsages(), "\n"); usages != "" {
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, "Options:", usages)
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n") + "\n"
}

func (t *Tokenizer) reset() error {
	var err error
	t.flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		f.Changed = false

		var v pflag.Value
		if v, err = unsetValue(f); err != nil {
			return
		}
		if v != nil {
			f.Value = v
			return
		}
		err = f.Value.Set(f.DefValue)
	})
	return err
}

// unsetValue rebuilds slice and map values, which append or merge on every
// Set after the first and cannot be restored by setting DefValue. It returns
// nil for other types.
func unsetValue(f *pflag.Flag) (pflag.Value, error) {
	switch f.Value.Type() {
	case "stringSlice":
		return withDefault(f, (*pflag.FlagSet).StringSlice)
	case "stringArray":
		return withDefault(f, (*pflag.FlagSet).StringArray)
	case "intSlice":
		return withDefault(f, (*pflag.FlagSet).IntSlice)
	case "int32Slice":
		return withDefault(f, (*pflag.FlagSet).Int32Slice)
	case "int64Slice":
		return withDefault(f, (*pflag.FlagSet).Int64Slice)
	case "uintSlice":
		return withDefault(f, (*pflag.FlagSet).UintSlice)
	case "boolSlice":
		return withDefault(f, (*pflag.FlagSet).BoolSlice)
	case "float32Slice":
		return withDefault(f, (*pflag.FlagSet).Float32Slice)
	case "float64Slice":
		return withDefault(f, (*pflag.FlagSet).Float64Slice)
	case "durationSlice":
		return withDefault(f, (*pflag.FlagSet).DurationSlice)
	case "ipSlice":
		return withDefault(f, (*pflag.FlagSet).IPSlice)
	case "stringToString":
		return withDefault(f, (*pflag.FlagSet).StringToString)
	case "stringToInt":
		return withDefault(f, (*pflag.FlagSet).StringToInt)
	case "stringToInt64":
		return withDefault(f, (*pflag.FlagSet).StringToInt64)
	}
	return nil, nil
}

// withDefault defines a fresh flag of the same type on a scratch set. The
// "[a,b]" form pflag renders DefValue in is parsed back through Set on a
// second scratch flag, so the fresh value starts unset and the next Set
// replaces the default instead of extending it.
func withDefault[T any](f *pflag.Flag, define func(*pflag.FlagSet, string, T, string) *T) (pflag.Value, error) {
	var def T
	if inner := strings.TrimSuffix(strings.TrimPrefix(f.DefValue, "["), "]"); inner != "" {
		scratch := pflag.NewFlagSet(f.Name, pflag.ContinueOnError)
		p := define(scratch, f.Name, def, "")
		if err := scratch.Set(f.Name, inner); err != nil {
			return nil, fmt.Errorf("failed to restore default of --%s: %w", f.Name, err)
		}
		def = *p
	}

	fs := pflag.NewFlagSet(f.Name, pflag.ContinueOnError)
	define(fs, f.Name, def, "")
	return fs.Lookup(f.Name).Value, nil
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

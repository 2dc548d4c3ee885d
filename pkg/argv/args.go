package argv

import (
	"fmt"
	"strconv"
)

// Args is the tokenized form of a raw argument vector. Positional holds the
// non-flag tokens in order; flag values are captured as strings at parse time.
type Args struct {
	Raw        []string
	Positional []string

	values  map[string]string
	changed map[string]bool
}

// First returns the first positional token or "" when there is none.
func (a *Args) First() string {
	if a == nil || len(a.Positional) == 0 {
		return ""
	}
	return a.Positional[0]
}

// Rest returns the positional tokens after the first one.
func (a *Args) Rest() []string {
	if a == nil || len(a.Positional) < 2 {
		return nil
	}
	return a.Positional[1:]
}

func (a *Args) Value(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[name]
	return v, ok
}

func (a *Args) Changed(name string) bool {
	return a != nil && a.changed[name]
}

func (a *Args) String(name string) string {
	v, _ := a.Value(name)
	return v
}

func (a *Args) Bool(name string) bool {
	v, ok := a.Value(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func (a *Args) Int(name string) (int, error) {
	v, ok := a.Value(name)
	if !ok {
		return 0, fmt.Errorf("flag %q is not defined", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("flag %q: %w", name, err)
	}
	return n, nil
}

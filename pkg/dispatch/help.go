package dispatch

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	indent         = "  "
	columnGap      = 3
	noCommandLabel = "no command"
)

// Help renders the tokenizer banner followed by the command table. Names are
// listed in registration order with descriptions aligned in one column; the
// no-command entry, if any, comes last.
func (r *Registry) Help() string {
	lines := []string{r.tokenizer.Help()}

	if len(r.commands) > 0 || r.nocommand != nil {
		lines = append(lines, "Commands:")
	}

	width := nameWidth(r.commands)
	if r.nocommand != nil {
		// "no command" has no indent, so it lines up with an indented
		// name two columns shorter
		width = max(width, runewidth.StringWidth(noCommandLabel)-len(indent))
	}
	column := width + columnGap

	for _, cmd := range r.commands {
		lines = append(lines, row(cmd.Name, cmd.Description, column))
	}

	if r.nocommand != nil {
		lines = append(lines, pad(noCommandLabel, len(indent)+column)+r.nocommand.description)
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// listing renders cmds as aligned rows sorted alphabetically.
func listing(cmds []Command) []string {
	if len(cmds) == 0 {
		return nil
	}

	column := nameWidth(cmds) + columnGap
	lines := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		lines = append(lines, row(cmd.Name, cmd.Description, column))
	}
	sort.Strings(lines)
	return lines
}

func nameWidth(cmds []Command) int {
	width := 0
	for _, cmd := range cmds {
		width = max(width, runewidth.StringWidth(cmd.Name))
	}
	return width
}

func row(name, description string, column int) string {
	return indent + pad(name, column) + description
}

func pad(s string, column int) string {
	n := column - runewidth.StringWidth(s)
	if n < 1 {
		n = 1
	}
	return s + strings.Repeat(" ", n)
}

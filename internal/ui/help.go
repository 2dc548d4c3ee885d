package ui

import (
	"strings"
)

const (
	rowIndent      = "  "
	rowGap         = "   "
	noCommandLabel = "no command"
)

// RenderHelp colors plain help text: headers with TitleStyle, then the name
// and description of each row with NameStyle and DescStyle. Padding is left
// untouched so the column alignment survives.
func RenderHelp(help string, noColor bool) string {
	if noColor {
		return help
	}

	lines := strings.Split(help, "\n")
	for i, line := range lines {
		if isHeader(line) {
			lines[i] = TitleStyle.Render(line)
			continue
		}
		if r, ok := splitRow(line); ok {
			lines[i] = r.render()
		}
	}
	return strings.Join(lines, "\n")
}

func isHeader(line string) bool {
	return line != "" &&
		!strings.HasPrefix(line, " ") &&
		strings.HasSuffix(line, ":")
}

type row struct {
	indent string
	name   string
	pad    string
	desc   string
}

// splitRow recognizes indented command and flag rows and the "no command"
// row. Names end at the first run of three spaces.
func splitRow(line string) (row, bool) {
	var r row
	switch {
	case strings.HasPrefix(line, noCommandLabel+" "):
	case strings.HasPrefix(line, rowIndent) && strings.TrimSpace(line) != "":
		r.indent = line[:len(line)-len(strings.TrimLeft(line, " "))]
	default:
		return row{}, false
	}

	rest := line[len(r.indent):]
	i := strings.Index(rest, rowGap)
	if i == -1 {
		r.name = strings.TrimRight(rest, " ")
		r.pad = rest[len(r.name):]
		return r, true
	}

	r.name = rest[:i]
	tail := rest[i:]
	r.desc = strings.TrimLeft(tail, " ")
	r.pad = tail[:len(tail)-len(r.desc)]
	return r, true
}

func (r row) render() string {
	out := r.indent + NameStyle.Render(r.name) + r.pad
	if r.desc != "" {
		out += DescStyle.Render(r.desc)
	}
	return out
}

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHelp_NoColor(t *testing.T) {
	help := "Usage: tool\n\nCommands:\n  start   Start\n"
	assert.Equal(t, help, RenderHelp(help, true))
}

func TestRenderHelp_KeepsRows(t *testing.T) {
	help := "Commands:\n  start   Start\nno command   help\n"
	out := RenderHelp(help, false)

	assert.Contains(t, out, "  start   Start\n")
	assert.Contains(t, out, "no command   help\n")
	assert.Contains(t, out, "Commands:")
}

func TestIsHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{line: "Commands:", want: true},
		{line: "Options:", want: true},
		{line: "  start:", want: false},
		{line: "", want: false},
		{line: "no command   help", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isHeader(tt.line))
		})
	}
}

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   row
		wantOK bool
	}{
		{
			name:   "command row",
			line:   "  start   Start the service",
			want:   row{indent: "  ", name: "start", pad: "   ", desc: "Start the service"},
			wantOK: true,
		},
		{
			name:   "name with argument hint",
			line:   "  deploy <target>   Deploy to a target",
			want:   row{indent: "  ", name: "deploy <target>", pad: "   ", desc: "Deploy to a target"},
			wantOK: true,
		},
		{
			name:   "no command row",
			line:   "no command    Show help",
			want:   row{name: "no command", pad: "    ", desc: "Show help"},
			wantOK: true,
		},
		{
			name:   "empty description",
			line:   "  status   ",
			want:   row{indent: "  ", name: "status", pad: "   "},
			wantOK: true,
		},
		{
			name:   "flag row",
			line:   "  -d, --debug     enable debug logs",
			want:   row{indent: "  ", name: "-d, --debug", pad: "     ", desc: "enable debug logs"},
			wantOK: true,
		},
		{name: "header", line: "Commands:", wantOK: false},
		{name: "usage line", line: "Usage: tool <command>", wantOK: false},
		{name: "blank", line: "", wantOK: false},
		{name: "spaces only", line: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := splitRow(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				// the parts reassemble the original line
				assert.Equal(t, tt.line, got.indent+got.name+got.pad+got.desc)
			}
		})
	}
}

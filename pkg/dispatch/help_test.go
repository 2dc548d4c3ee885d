package dispatch

import (
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/subcmd/pkg/argv"
	"github.com/stretchr/testify/assert"
)

// commandLines returns the help lines after the "Commands:" header.
func commandLines(help string) []string {
	_, after, found := strings.Cut(help, "Commands:\n")
	if !found {
		return nil
	}
	return strings.Split(after, "\n")
}

func TestHelp_Layout(t *testing.T) {
	nop := SyncFunc(func(_ context.Context, _ *argv.Args) error { return nil })

	tests := []struct {
		name      string
		setup     func(r *Registry)
		wantLines []string
	}{
		{
			name: "column is longest name plus three",
			setup: func(r *Registry) {
				r.Command("a", "first", nop).Command("build", "second", nop)
			},
			wantLines: []string{
				"  a       first",
				"  build   second",
				"",
			},
		},
		{
			name: "fallback forces minimum column",
			setup: func(r *Registry) {
				r.Command("a", "first", nop).NoCommand("show help", nop)
			},
			wantLines: []string{
				"  a          first",
				"no command   show help",
				"",
			},
		},
		{
			name: "long names win over fallback minimum",
			setup: func(r *Registry) {
				r.Command("deploy <target>", "Deploy", nop).
					Handle("status", nop).
					NoCommand("help", nop)
			},
			wantLines: []string{
				"  deploy <target>   Deploy",
				"  status            ",
				"no command          help",
				"",
			},
		},
		{
			name: "registration order is kept",
			setup: func(r *Registry) {
				r.Command("zeta", "z", nop).Command("alpha", "a", nop)
			},
			wantLines: []string{
				"  zeta    z",
				"  alpha   a",
				"",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			tt.setup(r)
			assert.Equal(t, tt.wantLines, commandLines(r.Help()))
		})
	}
}

func TestHelp_NoCommandsNoHeader(t *testing.T) {
	r := New().Usage("Usage: tool")

	help := r.Help()
	assert.NotContains(t, help, "Commands:")
	assert.True(t, strings.HasPrefix(help, "Usage: tool\n"))
	assert.True(t, strings.HasSuffix(help, "\n"))
}

func TestHelp_BannerFirst(t *testing.T) {
	r := New().Usage("Usage: tool <command>")
	r.Flags().Bool("dry-run", false, "print only")
	r.Handle("start", SyncFunc(func(context.Context, *argv.Args) error { return nil }))

	help := r.Help()
	banner := r.Tokenizer().Help()

	assert.True(t, strings.HasPrefix(help, banner+"\nCommands:\n"))
	assert.Contains(t, banner, "--dry-run")
}

func TestHelp_Idempotent(t *testing.T) {
	r := New().
		Command("start", "Start", SyncFunc(func(context.Context, *argv.Args) error { return nil })).
		HandleNoCommand(SyncFunc(func(context.Context, *argv.Args) error { return nil }))

	assert.Equal(t, r.Help(), r.Help())
}

package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/subcmd/pkg/argv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts invocations per command and keeps the last arguments.
type recorder struct {
	calls map[string]int
	last  *argv.Args
}

func newRecorder() *recorder {
	return &recorder{calls: make(map[string]int)}
}

func (rec *recorder) handler(name string) Handler {
	return HandlerFunc(func(ctx context.Context, args *argv.Args, done Callback) {
		rec.calls[name]++
		rec.last = args
		done(nil)
	})
}

func TestRegistry_CommandID(t *testing.T) {
	tests := []struct {
		name   string
		cmd    string
		wantID string
	}{
		{name: "single word", cmd: "build", wantID: "build"},
		{name: "with argument hint", cmd: "deploy staging", wantID: "deploy"},
		{name: "split on first space only", cmd: "copy <src> <dst>", wantID: "copy"},
		{name: "tab separates id", cmd: "lint\t<path>", wantID: "lint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New().Handle(tt.cmd, SyncFunc(func(context.Context, *argv.Args) error { return nil }))

			cmd, ok := r.Lookup(tt.wantID)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, cmd.ID)
			assert.Equal(t, tt.cmd, cmd.Name)
			assert.Empty(t, cmd.Description)
		})
	}
}

func TestRegistry_ReRegisterKeepsListing(t *testing.T) {
	rec := newRecorder()
	r := New(WithScheduler(Inline)).
		Command("build", "first", rec.handler("first")).
		Command("build fast", "second", rec.handler("second"))

	cmds := r.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, "first", cmds[0].Description)
	assert.Equal(t, "second", cmds[1].Description)

	cmd, ok := r.Lookup("build")
	require.True(t, ok)
	assert.Equal(t, "second", cmd.Description)

	require.NoError(t, r.Execute(context.Background(), []string{"build"}, nil))
	assert.Equal(t, 0, rec.calls["first"])
	assert.Equal(t, 1, rec.calls["second"])
}

func TestRegistry_CommandsReturnsCopy(t *testing.T) {
	r := New().Handle("start", newRecorder().handler("start"))

	cmds := r.Commands()
	cmds[0].Name = "changed"

	assert.Equal(t, "start", r.Commands()[0].Name)
}

func TestRegistry_InvalidHandler(t *testing.T) {
	var nilFunc HandlerFunc
	var nilSync SyncFunc

	tests := []struct {
		name     string
		register func(r *Registry)
	}{
		{name: "nil handler", register: func(r *Registry) { r.Command("start", "", nil) }},
		{name: "nil HandlerFunc", register: func(r *Registry) { r.Handle("start", nilFunc) }},
		{name: "nil SyncFunc", register: func(r *Registry) { r.Handle("start", nilSync) }},
		{name: "nil fallback", register: func(r *Registry) { r.NoCommand("help", nil) }},
		{name: "nil fallback func", register: func(r *Registry) { r.HandleNoCommand(nilFunc) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			defer func() {
				rec := recover()
				require.NotNil(t, rec, "expected panic on invalid handler")
				err, ok := rec.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ErrInvalidHandler))
				assert.Empty(t, r.Commands())
				assert.False(t, r.HasNoCommand())
			}()
			tt.register(r)
		})
	}
}

func TestRegistry_Chaining(t *testing.T) {
	rec := newRecorder()
	r := New().
		Usage("Usage: tool <command>").
		Command("start", "Start it", rec.handler("start")).
		Handle("stop", rec.handler("stop")).
		NoCommand("Show help", rec.handler("none"))

	assert.Len(t, r.Commands(), 2)
	assert.True(t, r.HasNoCommand())
	assert.Contains(t, r.Help(), "Usage: tool <command>")
}

func TestRegistry_Flags(t *testing.T) {
	r := New()
	r.Flags().Bool("dry-run", false, "print only")

	args, err := r.Parse([]string{"--dry-run", "deploy"})
	require.NoError(t, err)
	assert.True(t, args.Bool("dry-run"))
	assert.Equal(t, "deploy", args.First())
}

package dispatch

import (
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/sandevgo/subcmd/pkg/argv"
	"github.com/spf13/pflag"
)

// DefaultSuggestDistance is the exclusive edit-distance bound for
// "did you mean" candidates.
const DefaultSuggestDistance = 3

type ErrorMode int

const (
	// ModeReturn returns resolution errors from Execute.
	ModeReturn ErrorMode = iota
	// ModeCallback hands resolution errors to the completion callback, or
	// prints them and exits with status 1 when there is none.
	ModeCallback
)

type Command struct {
	ID          string
	Name        string
	Description string
	Handler     Handler
}

type fallback struct {
	description string
	handler     Handler
}

// Registry holds the commands of one CLI invocation. It is mutated during
// setup and then read by Execute and Help; it is not safe for concurrent use.
type Registry struct {
	tokenizer   *argv.Tokenizer
	defaultArgs []string
	scheduler   Scheduler
	manualDrain bool
	mode        ErrorMode
	maxDistance int
	stderr      io.Writer
	exit        func(code int)

	commands  []Command
	byID      map[string]Command
	nocommand *fallback
}

type Option func(*Registry)

// WithDefaultArgs sets the vector Execute tokenizes when called with nil args.
func WithDefaultArgs(args []string) Option {
	return func(r *Registry) {
		r.defaultArgs = append([]string{}, args...)
	}
}

func WithTokenizer(t *argv.Tokenizer) Option {
	return func(r *Registry) {
		r.tokenizer = t
	}
}

func WithScheduler(s Scheduler) Option {
	return func(r *Registry) {
		r.scheduler = s
	}
}

// WithManualDrain leaves deferred prefix matches queued after Execute
// returns; the caller drains the scheduler or uses Run.
func WithManualDrain() Option {
	return func(r *Registry) {
		r.manualDrain = true
	}
}

func WithErrorMode(mode ErrorMode) Option {
	return func(r *Registry) {
		r.mode = mode
	}
}

func WithSuggestDistance(n int) Option {
	return func(r *Registry) {
		r.maxDistance = n
	}
}

func WithStderr(w io.Writer) Option {
	return func(r *Registry) {
		r.stderr = w
	}
}

func WithExit(fn func(code int)) Option {
	return func(r *Registry) {
		r.exit = fn
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		defaultArgs: []string{},
		scheduler:   NewQueue(),
		mode:        ModeReturn,
		maxDistance: DefaultSuggestDistance,
		stderr:      os.Stderr,
		exit:        os.Exit,
		byID:        make(map[string]Command),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.tokenizer == nil {
		r.tokenizer = argv.NewTokenizer("")
	}
	return r
}

// Command registers a command. The id is the part of name before the first
// whitespace character, so "deploy <target>" is selected by "deploy".
// Registering an id again replaces the lookup entry but both stay in the
// listing. A nil handler panics with ErrInvalidHandler.
func (r *Registry) Command(name, description string, h Handler) *Registry {
	if !validHandler(h) {
		panic(invalidHandler(name))
	}

	id := name
	if i := strings.IndexFunc(name, unicode.IsSpace); i != -1 {
		id = name[:i]
	}

	cmd := Command{
		ID:          id,
		Name:        name,
		Description: description,
		Handler:     h,
	}
	r.commands = append(r.commands, cmd)
	r.byID[id] = cmd
	return r
}

// Handle registers a command without a description.
func (r *Registry) Handle(name string, h Handler) *Registry {
	return r.Command(name, "", h)
}

// NoCommand sets the handler run when no positional token is given,
// replacing any previous one.
func (r *Registry) NoCommand(description string, h Handler) *Registry {
	if !validHandler(h) {
		panic(invalidHandler("no command"))
	}
	r.nocommand = &fallback{
		description: description,
		handler:     h,
	}
	return r
}

func (r *Registry) HandleNoCommand(h Handler) *Registry {
	return r.NoCommand("", h)
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

func (r *Registry) Lookup(id string) (Command, bool) {
	cmd, ok := r.byID[id]
	return cmd, ok
}

func (r *Registry) HasNoCommand() bool {
	return r.nocommand != nil
}

func (r *Registry) Tokenizer() *argv.Tokenizer {
	return r.tokenizer
}

func (r *Registry) Flags() *pflag.FlagSet {
	return r.tokenizer.Flags()
}

// Usage sets the banner line shown at the top of Help.
func (r *Registry) Usage(text string) *Registry {
	r.tokenizer.SetUsage(text)
	return r
}

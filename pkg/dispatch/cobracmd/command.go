// Package cobracmd mounts a dispatch.Registry as the root of a cobra CLI.
// Cobra owns process bootstrapping (context, output streams, exit status)
// while the registry resolves the sub-command, so cobra flag parsing is off
// and every argument reaches the registry tokenizer untouched.
package cobracmd

import (
	"fmt"

	"github.com/sandevgo/subcmd/pkg/argv"
	"github.com/sandevgo/subcmd/pkg/dispatch"
	"github.com/spf13/cobra"
)

type options struct {
	use    string
	short  string
	long   string
	wait   bool
	render func(string) string
}

type Option func(*options)

func WithUse(use string) Option {
	return func(o *options) {
		o.use = use
	}
}

func WithShort(short string) Option {
	return func(o *options) {
		o.short = short
	}
}

func WithLong(long string) Option {
	return func(o *options) {
		o.long = long
	}
}

// WithWait makes RunE block until the handler calls its completion callback
// or the command context is done.
func WithWait() Option {
	return func(o *options) {
		o.wait = true
	}
}

// WithHelpRenderer post-processes the registry help before it is printed.
func WithHelpRenderer(fn func(string) string) Option {
	return func(o *options) {
		o.render = fn
	}
}

func New(r *dispatch.Registry, opts ...Option) *cobra.Command {
	o := &options{
		use:    r.Tokenizer().Name(),
		render: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(o)
	}

	cmd := &cobra.Command{
		Use:                o.use,
		Short:              o.short,
		Long:               o.long,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if parsed, err := r.Parse(args); err == nil && parsed.Bool(argv.HelpFlag) {
				return cmd.Help()
			}
			return run(cmd, r, args, o.wait)
		},
	}

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), o.render(r.Help()))
	})
	return cmd
}

func run(cmd *cobra.Command, r *dispatch.Registry, args []string, wait bool) error {
	ctx := cmd.Context()

	// cobra already resolved the process arguments
	if args == nil {
		args = []string{}
	}

	if !wait {
		return r.Run(ctx, args, nil)
	}

	result := make(chan error, 1)
	done := func(err error) {
		select {
		case result <- err:
		default:
		}
	}

	if err := r.Run(ctx, args, done); err != nil {
		return err
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

package dispatch

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sandevgo/subcmd/pkg/argv"
	"github.com/sandevgo/subcmd/pkg/log"
)

// Execute tokenizes raw (or the default args when raw is nil) and invokes the
// command selected by the first positional token:
//
//  1. no token: the no-command handler, or ErrNoCommand
//  2. a command whose id equals the token
//  3. the only command whose id starts with the token, deferred through the
//     scheduler
//
// Several prefix matches fail with ErrAmbiguousCommand, none with
// ErrUnrecognizedCommand carrying near-miss suggestions. How failures reach
// the caller depends on the ErrorMode. A draining scheduler is drained once
// resolution has returned, unless WithManualDrain is set. Execute does not
// wait for handlers that complete asynchronously.
func (r *Registry) Execute(ctx context.Context, raw []string, done Callback) error {
	logger := log.FromCtx(ctx)

	if d, ok := r.scheduler.(Drainer); ok && !r.manualDrain {
		defer d.Drain()
	}

	if raw == nil {
		raw = r.defaultArgs
	}

	args, err := r.tokenizer.Parse(raw)
	if err != nil {
		return r.fail(done, fmt.Errorf("failed to parse arguments: %w", err))
	}

	cb := done
	if cb == nil {
		cb = noop
	}

	name := args.First()
	if name == "" {
		if r.nocommand == nil {
			return r.fail(done, noCommand())
		}
		logger.Debug().Msg("dispatching no-command handler")
		r.nocommand.handler.Invoke(ctx, args, cb)
		return nil
	}

	if cmd, ok := r.byID[name]; ok {
		logger.Debug().Str("command", cmd.ID).Msg("dispatching exact match")
		cmd.Handler.Invoke(ctx, args, cb)
		return nil
	}

	filtered := r.withPrefix(name)
	switch len(filtered) {
	case 0:
		suggestions := r.suggest(name)
		logger.Debug().Str("input", name).Int("suggestions", len(suggestions)).Msg("unrecognized command")
		return r.fail(done, unrecognized(name, suggestions))
	case 1:
		cmd := filtered[0]
		logger.Debug().Str("input", name).Str("command", cmd.ID).Msg("deferring prefix match")
		r.scheduler.Defer(func() {
			cmd.Handler.Invoke(ctx, args, cb)
		})
		return nil
	default:
		logger.Debug().Str("input", name).Int("matches", len(filtered)).Msg("ambiguous command")
		return r.fail(done, ambiguous(name, listing(filtered)))
	}
}

// Run calls Execute and then drains the scheduler even when WithManualDrain
// is set, so a deferred prefix match has been invoked by the time Run returns.
func (r *Registry) Run(ctx context.Context, raw []string, done Callback) error {
	err := r.Execute(ctx, raw, done)
	if d, ok := r.scheduler.(Drainer); ok {
		d.Drain()
	}
	return err
}

// Parse tokenizes raw without dispatching.
func (r *Registry) Parse(raw []string) (*argv.Args, error) {
	if raw == nil {
		raw = r.defaultArgs
	}
	return r.tokenizer.Parse(raw)
}

func (r *Registry) withPrefix(name string) []Command {
	var out []Command
	for _, cmd := range r.commands {
		if strings.HasPrefix(cmd.ID, name) {
			out = append(out, cmd)
		}
	}
	return out
}

type candidate struct {
	cmd      Command
	distance int
}

// suggest ranks every command by edit distance to name and renders the ones
// under the configured bound.
func (r *Registry) suggest(name string) []string {
	candidates := make([]candidate, 0, len(r.commands))
	for _, cmd := range r.commands {
		candidates = append(candidates, candidate{
			cmd:      cmd,
			distance: levenshtein.ComputeDistance(name, cmd.ID),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	var near []Command
	for _, c := range candidates {
		if c.distance < r.maxDistance {
			near = append(near, c.cmd)
		}
	}
	return listing(near)
}

func (r *Registry) fail(done Callback, err error) error {
	if r.mode != ModeCallback {
		return err
	}
	if done != nil {
		done(err)
		return nil
	}
	fmt.Fprintln(r.stderr, err.Error())
	r.exit(1)
	return err
}

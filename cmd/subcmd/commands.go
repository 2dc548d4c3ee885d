package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sandevgo/subcmd/internal/config"
	"github.com/sandevgo/subcmd/internal/ui"
	"github.com/sandevgo/subcmd/pkg/argv"
	"github.com/sandevgo/subcmd/pkg/dispatch"
	"github.com/sandevgo/subcmd/pkg/log"
)

// buildDuration simulates work done by the asynchronous build handler.
var buildDuration = 200 * time.Millisecond

type controller struct {
	out     io.Writer
	running bool
}

func newRegistry(out io.Writer, cfg *config.AppConfig, opts ...dispatch.Option) *dispatch.Registry {
	c := &controller{out: out}
	reg := dispatch.New(opts...)

	reg.Usage(fmt.Sprintf("Usage: %s <command> [options]", appName))
	reg.Flags().BoolP("debug", "d", false, "enable debug logging")
	reg.Flags().Bool("dry-run", false, "print what would happen")

	printHelp := dispatch.SyncFunc(func(context.Context, *argv.Args) error {
		_, err := fmt.Fprint(out, ui.RenderHelp(reg.Help(), cfg.NoColor))
		return err
	})

	return reg.
		Command("start", "Start the service", dispatch.SyncFunc(c.start)).
		Command("stop", "Stop the service", dispatch.SyncFunc(c.stop)).
		Command("status", "Show service status", dispatch.SyncFunc(c.status)).
		Command("build", "Build the service in the background", dispatch.HandlerFunc(c.build)).
		Command("deploy <target>", "Deploy to the given target", dispatch.SyncFunc(c.deploy)).
		Command("config", "Print the effective configuration", dispatch.SyncFunc(func(context.Context, *argv.Args) error {
			_, err := fmt.Fprint(out, cfg.MarshalEnv())
			return err
		})).
		Command("help", "Show this help", printHelp).
		NoCommand("Show this help", printHelp)
}

func (c *controller) start(ctx context.Context, args *argv.Args) error {
	if args.Bool("dry-run") {
		fmt.Fprintln(c.out, "would start service")
		return nil
	}
	log.FromCtx(ctx).Debug().Msg("starting service")
	c.running = true
	fmt.Fprintln(c.out, "service started")
	return nil
}

func (c *controller) stop(ctx context.Context, args *argv.Args) error {
	if args.Bool("dry-run") {
		fmt.Fprintln(c.out, "would stop service")
		return nil
	}
	log.FromCtx(ctx).Debug().Msg("stopping service")
	c.running = false
	fmt.Fprintln(c.out, "service stopped")
	return nil
}

func (c *controller) status(_ context.Context, _ *argv.Args) error {
	state := "stopped"
	if c.running {
		state = "running"
	}
	fmt.Fprintf(c.out, "service is %s\n", state)
	return nil
}

// build completes from a goroutine so callers must wait on done.
func (c *controller) build(ctx context.Context, args *argv.Args, done dispatch.Callback) {
	logger := log.FromCtx(ctx)
	logger.Debug().Dur("duration", buildDuration).Msg("build started")

	go func() {
		select {
		case <-ctx.Done():
			done(ctx.Err())
			return
		case <-time.After(buildDuration):
		}

		if args.Bool("dry-run") {
			fmt.Fprintln(c.out, "would build service")
		} else {
			fmt.Fprintln(c.out, "build finished")
		}
		logger.Debug().Msg("build finished")
		done(nil)
	}()
}

func (c *controller) deploy(ctx context.Context, args *argv.Args) error {
	rest := args.Rest()
	if len(rest) == 0 {
		return errors.New("deploy requires a target")
	}
	target := rest[0]

	log.FromCtx(ctx).Debug().Str("target", target).Msg("deploying")
	if args.Bool("dry-run") {
		fmt.Fprintf(c.out, "would deploy to %s\n", target)
		return nil
	}
	fmt.Fprintf(c.out, "deployed to %s\n", target)
	return nil
}

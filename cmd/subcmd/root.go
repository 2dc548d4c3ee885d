package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/subcmd/internal/config"
	"github.com/sandevgo/subcmd/internal/ui"
	"github.com/sandevgo/subcmd/pkg/argv"
	"github.com/sandevgo/subcmd/pkg/dispatch"
	"github.com/sandevgo/subcmd/pkg/dispatch/cobracmd"
	"github.com/sandevgo/subcmd/pkg/log"
)

const appName = "subcmd"

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	envFile, err := config.EnvFilePath()
	if err != nil {
		return err
	}
	loaded, err := config.LoadEnvFile(envFile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg, err := config.NewAppConfig()
	if err != nil {
		return err
	}

	opts := append(cfg.DispatchOptions(),
		dispatch.WithTokenizer(argv.NewTokenizer(appName)),
		dispatch.WithDefaultArgs(args),
		dispatch.WithStderr(stderr),
	)
	reg := newRegistry(stdout, cfg, opts...)

	// pre-parse so --debug is honored before dispatching
	debug := cfg.Debug
	if parsed, err := reg.Parse(args); err == nil && parsed.Bool("debug") {
		debug = true
	}

	ctx, flushLog := log.NewContextWithLogger(ctx, log.Options{
		Debug:   debug,
		NoColor: cfg.NoColor,
		Out:     stderr,
	})
	defer flushLog()

	logger := log.FromCtx(ctx)
	if loaded {
		logger.Debug().Str("path", envFile).Msg("loaded .env file")
	}

	root := cobracmd.New(reg,
		cobracmd.WithShort("Service control demo for prefix-matched sub-commands"),
		cobracmd.WithWait(),
		cobracmd.WithHelpRenderer(func(s string) string {
			return ui.RenderHelp(s, cfg.NoColor)
		}),
	)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Debug().Err(err).Msg("command failed")
		return err
	}
	return nil
}

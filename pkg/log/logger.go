package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Debug   bool
	NoColor bool
	// Out defaults to stderr so that command output on stdout stays clean.
	Out io.Writer
}

// NewContextWithLogger installs a console logger in ctx. The returned func
// flushes the non-blocking writer and must be called before exit. The level
// is set on the logger itself; zerolog's global level is left alone.
func NewContextWithLogger(ctx context.Context, opts Options) (context.Context, func()) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	// Ring buffer of 1000 entries, polled every 5ms
	wr := diode.NewWriter(out, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(os.Stderr, "Logger Dropped %d messages\n", missed)
	})

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        wr,
		NoColor:    opts.NoColor,
		TimeFormat: time.TimeOnly,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
	}).Level(level).With().Timestamp().Logger()

	log.Logger = logger

	return logger.WithContext(ctx), func() {
		wr.Close()
	}
}

// FromCtx returns the logger stored in ctx, or a disabled logger.
func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}

package dispatch

import (
	"context"

	"github.com/sandevgo/subcmd/pkg/argv"
)

// Callback signals that a handler finished. A non-nil err reports failure.
type Callback func(err error)

// Handler is invoked with the parsed arguments and a completion callback.
// Handlers may call done inline, later from another goroutine, or never.
type Handler interface {
	Invoke(ctx context.Context, args *argv.Args, done Callback)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, args *argv.Args, done Callback)

func (f HandlerFunc) Invoke(ctx context.Context, args *argv.Args, done Callback) {
	f(ctx, args, done)
}

// SyncFunc adapts a synchronous function to Handler. Its result is passed to
// done before Invoke returns.
type SyncFunc func(ctx context.Context, args *argv.Args) error

func (f SyncFunc) Invoke(ctx context.Context, args *argv.Args, done Callback) {
	done(f(ctx, args))
}

func noop(error) {}

func validHandler(h Handler) bool {
	switch fn := h.(type) {
	case nil:
		return false
	case HandlerFunc:
		return fn != nil
	case SyncFunc:
		return fn != nil
	default:
		return true
	}
}

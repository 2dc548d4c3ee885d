package dispatch

import (
	"strings"
)

type Kind int

const (
	KindInvalidHandler Kind = iota + 1
	KindNoCommand
	KindUnrecognized
	KindAmbiguous
)

func (k Kind) String() string {
	switch k {
	case KindInvalidHandler:
		return "invalid handler"
	case KindNoCommand:
		return "no command"
	case KindUnrecognized:
		return "unrecognized command"
	case KindAmbiguous:
		return "ambiguous command"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Matching compares Kind only.
var (
	ErrInvalidHandler      = &Error{Kind: KindInvalidHandler}
	ErrNoCommand           = &Error{Kind: KindNoCommand}
	ErrUnrecognizedCommand = &Error{Kind: KindUnrecognized}
	ErrAmbiguousCommand    = &Error{Kind: KindAmbiguous}
)

// Error is returned (or delivered to the completion callback) when
// resolution fails. Listing holds the "did you mean" lines, already sorted.
type Error struct {
	Kind    Kind
	Command string
	Message string
	Listing []string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if len(e.Listing) == 0 {
		return msg
	}
	return msg + "\nDid you mean:\n" + strings.Join(e.Listing, "\n")
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func invalidHandler(what string) *Error {
	return &Error{
		Kind:    KindInvalidHandler,
		Command: what,
		Message: "handler is not a function",
	}
}

func noCommand() *Error {
	return &Error{
		Kind:    KindNoCommand,
		Message: "No command given",
	}
}

func unrecognized(name string, listing []string) *Error {
	return &Error{
		Kind:    KindUnrecognized,
		Command: name,
		Message: "Unrecognized command: " + name,
		Listing: listing,
	}
}

func ambiguous(name string, listing []string) *Error {
	return &Error{
		Kind:    KindAmbiguous,
		Command: name,
		Message: "Ambiguous command: " + name,
		Listing: listing,
	}
}

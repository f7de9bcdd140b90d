package captions

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidRequest
	KindDownloadFailed
	KindNoCaptionsAvailable
	KindFileNotFound
	KindParseFailed
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindDownloadFailed:
		return "download_failed"
	case KindNoCaptionsAvailable:
		return "no_captions_available"
	case KindFileNotFound:
		return "file_not_found"
	case KindParseFailed:
		return "parse_failed"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a pipeline failure tagged with its Kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// E builds an *Error.
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}

var (
	ErrNoURL               = errors.New("no url provided")
	ErrNoCaptionsAvailable = errors.New("no automatic captions available")
	ErrEmptyCaptions       = errors.New("caption track has no cues")
)

package models

import "github.com/pkg/errors"

// Failure kinds. Callers wrap one of these so the command can report what
// went wrong with errors.Is, every one of them ends the run.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrNetwork       = errors.New("network error")
	ErrNoBranches    = errors.New("project has no branches")
	ErrWrite         = errors.New("write error")
	ErrArguments     = errors.New("argument error")
)

// KindError attaches a failure kind to an underlying error.
type KindError struct {
	Kind error
	Err  error
}

func (e *KindError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *KindError) Unwrap() error {
	return e.Err
}

func (e *KindError) Is(target error) bool {
	return target == e.Kind
}

// WithKind wraps err with kind, nil stays nil.
func WithKind(kind error, err error) error {
	if err == nil {
		return nil
	}
	return &KindError{Kind: kind, Err: err}
}

// WithKindf is WithKind with a formatted message.
func WithKindf(kind error, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &KindError{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

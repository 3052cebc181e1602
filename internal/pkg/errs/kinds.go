package errs

import "errors"

// Kind classifies an engine error so collaborators can decide whether to
// surface it, retry it, or refetch state before retrying.
type Kind string

const (
	KindValidation    Kind = "VALIDATION"
	KindAuthorization Kind = "AUTHORIZATION"
	KindConflict      Kind = "CONFLICT"
	KindVerification  Kind = "VERIFICATION"
	KindNetwork       Kind = "NETWORK"
	KindNotFound      Kind = "NOT_FOUND"
)

type KindError struct {
	kind Kind
	msg  string
	err  error // wrapped cause
}

func (e KindError) Error() string {
	if e.err != nil {
		return string(e.kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.kind) + ": " + e.msg
}

func (e KindError) Unwrap() error {
	return e.err
}

func (e KindError) Kind() Kind {
	return e.kind
}

func (e KindError) Message() string {
	return e.msg
}

func WithKind(err error, kind Kind, msg string) error {
	if err != nil {
		err = Wrap(err, msg)
	}
	return KindError{kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind Kind) bool {
	var e KindError
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}

// KindOf returns the innermost classification attached to err.
func KindOf(err error) (Kind, bool) {
	var e KindError
	if errors.As(err, &e) {
		return e.kind, true
	}
	return "", false
}

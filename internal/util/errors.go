package util

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP mapping and caller decisions.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstreamUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	default:
		return "internal"
	}
}

// AppError is a classified error. Message is safe to show to clients.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError of the same kind and message so that
// wrapped sentinels still satisfy errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

func newError(kind Kind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg}
}

func Validation(msg string) error   { return newError(KindValidation, msg) }
func Unauthorized(msg string) error { return newError(KindUnauthorized, msg) }
func Forbidden(msg string) error    { return newError(KindForbidden, msg) }
func NotFound(msg string) error     { return newError(KindNotFound, msg) }
func Conflict(msg string) error     { return newError(KindConflict, msg) }

func Upstream(msg string, err error) error {
	return &AppError{Kind: KindUpstreamUnavailable, Message: msg, Err: err}
}

// Internal wraps an unexpected failure with context.
func Internal(msg string, err error) error {
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

// Wrap attaches a cause to a sentinel while keeping its kind and message.
func Wrap(sentinel error, err error) error {
	var ae *AppError
	if errors.As(sentinel, &ae) {
		return &AppError{Kind: ae.Kind, Message: ae.Message, Err: err}
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

// KindOf returns the kind of the first AppError in err's chain.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

var (
	ErrUserNotFound       = newError(KindNotFound, "user not found")
	ErrEmailRegistered    = newError(KindConflict, "email already registered")
	ErrInvalidCredentials = newError(KindUnauthorized, "invalid email or password")
	ErrNotTeacher         = newError(KindUnauthorized, "not authorized as a teacher")
	ErrNotStudent         = newError(KindUnauthorized, "not authorized as a student")
	ErrTeacherSignupOff   = newError(KindForbidden, "teacher registration is disabled")
	ErrBadRegistrationKey = newError(KindForbidden, "invalid teacher registration code")

	ErrDatasetNotFound    = newError(KindNotFound, "dataset not found")
	ErrQuestionNotFound   = newError(KindNotFound, "question not found")
	ErrNoMatchingMCQs     = newError(KindNotFound, "no MCQs found for this filter")
	ErrSessionNotFound    = newError(KindNotFound, "quiz session not found")
	ErrSessionNotOwned    = newError(KindForbidden, "quiz session belongs to another user")
	ErrQuestionIndex      = newError(KindValidation, "question index out of range")
	ErrQuestionNotStarted = newError(KindConflict, "question has not been started")
	ErrAlreadyAnswered    = newError(KindConflict, "question already answered")
	ErrNotAnsweredYet     = newError(KindConflict, "question has not been answered yet")
	ErrNoProgress         = newError(KindNotFound, "no saved quiz progress")
	ErrNoQuizData         = newError(KindNotFound, "no quiz data to export")

	ErrDoubtNotFound       = newError(KindNotFound, "doubt not found")
	ErrDoubtAlreadyClosed  = newError(KindConflict, "doubt already answered")
	ErrUnsupportedFileType = newError(KindValidation, "unsupported file type")

	ErrMaterialNotFound   = newError(KindNotFound, "study material not found")
	ErrExplainUnavailable = newError(KindUpstreamUnavailable, "explanations are not configured")
)

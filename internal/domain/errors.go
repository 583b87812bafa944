package domain

import "errors"

// ErrorKind classifies request-terminal failures so the HTTP layer can map
// each one to a status code and JSON envelope without inspecting messages.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindAuth
	KindInternal
)

// Error is a client-safe error. Message is returned verbatim to callers.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func ValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func ConflictError(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func AuthError(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func InternalError(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}

// KindOf extracts the classification of err. Unclassified errors are
// treated as internal so their details never reach a client.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

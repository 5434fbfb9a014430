package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies every error the app produces. Action creators and reducers
// only ever deal in the first three; the remaining kinds exist for the mock
// API surface, which maps them onto HTTP statuses.
type Kind string

const (
	KindValidation   Kind = "VALIDATION_ERROR"
	KindTransport    Kind = "TRANSPORT_ERROR"
	KindApplication  Kind = "APPLICATION_ERROR"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindInternal     Kind = "INTERNAL_ERROR"
)

type Metadata struct {
	HTTPStatus    int
	Retryable     bool
	PublicMessage string
}

var metadataByKind = map[Kind]Metadata{
	KindValidation: {
		HTTPStatus:    http.StatusBadRequest,
		Retryable:     false,
		PublicMessage: "validation failed",
	},
	KindTransport: {
		HTTPStatus:    http.StatusServiceUnavailable,
		Retryable:     true,
		PublicMessage: "network request failed",
	},
	KindApplication: {
		HTTPStatus:    http.StatusUnprocessableEntity,
		Retryable:     false,
		PublicMessage: "request rejected",
	},
	KindUnauthorized: {
		HTTPStatus:    http.StatusUnauthorized,
		Retryable:     false,
		PublicMessage: "authentication required",
	},
	KindNotFound: {
		HTTPStatus:    http.StatusNotFound,
		Retryable:     false,
		PublicMessage: "resource not found",
	},
	KindConflict: {
		HTTPStatus:    http.StatusConflict,
		Retryable:     false,
		PublicMessage: "conflict detected",
	},
	KindInternal: {
		HTTPStatus:    http.StatusInternalServerError,
		Retryable:     true,
		PublicMessage: "internal server error",
	},
}

func MetadataFor(kind Kind) Metadata {
	if meta, ok := metadataByKind[kind]; ok {
		return meta
	}
	return metadataByKind[KindInternal]
}

// Error is the single normalized error shape carried through the store.
// Message is always a human-readable string, never a raw exception dump.
type Error struct {
	kind    Kind
	message string
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func Wrap(kind Kind, err error, message string) *Error {
	if err == nil {
		return New(kind, message)
	}
	return &Error{kind: kind, message: message, cause: err}
}

func (e *Error) Kind() Kind {
	if e == nil {
		return KindInternal
	}
	return e.kind
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As extracts a typed *Error from any error chain, or returns nil.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// Normalize guarantees a typed error: anything untyped becomes the given kind
// carrying its own text as the message.
func Normalize(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	if typed := As(err); typed != nil {
		return typed
	}
	return Wrap(kind, err, err.Error())
}

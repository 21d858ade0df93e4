package services

import (
	"errors"

	"github.com/shashiranjanraj/dinehub/pkg/orm"
)

// Sentinel kinds. Controllers map them to HTTP status codes.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error is a client-facing failure: Kind selects the status, Message is
// shown to the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func badRequest(message string) error { return fail(ErrBadRequest, message) }

func conflict(message string) error { return fail(ErrConflict, message) }

func forbidden() error { return fail(ErrForbidden, "Forbidden") }

func notFound(what string) error { return fail(ErrNotFound, what+" not found") }

// unique turns a unique-key violation into a Conflict with message. The
// pre-insert checks catch the common case; this covers two writers racing.
func unique(err error, message string) error {
	if orm.IsDuplicate(err) {
		return conflict(message)
	}
	return err
}

// lookup converts GORM's record-not-found into a NotFound error for what.
func lookup(err error, what string) error {
	if orm.IsNotFound(err) {
		return notFound(what)
	}
	return err
}

package usecase

import (
	"errors"
	"fmt"

	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// Error carries the message shown to the client next to the error kind
// that decides the HTTP status.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Kind, utils.FormatValidationErrors(e.Fields))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func notFound(message string) error {
	return newError(ErrNotFound, message)
}

func invalidInput(message string) error {
	return newError(ErrInvalidInput, message)
}

func validationFailed(fields map[string]string) error {
	return &Error{Kind: ErrValidation, Message: "بيانات غير صحيحة", Fields: fields}
}

// validate runs the struct tags of req and turns failures into ErrValidation.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(errs)
	}
	return nil
}

// Actor is the authenticated caller of an owner-or-admin operation.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.IsAdmin || a.UserID == ownerID
}

package errs

import (
	"errors"
	"strings"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody   = Error("invalid request body")
	ErrMissingDetails       = Error("Missing Details")
	ErrAccountAlreadyExists = Error("Account already exists")
	ErrAccountNotFound      = Error("Account does not exist")
	ErrInvalidCredentials   = Error("Invalid Credentials")
	ErrInvalidEmail         = Error("invalid email")
	ErrInvalidPassword      = Error("password must be at least 6 characters")
	ErrInvalidFullName      = Error("full name cannot be empty")
	ErrTokenMissing         = Error("JWT must be provided")
	ErrInvalidToken         = Error("Invalid or expired token")
	ErrUserNotFound         = Error("User not found")
	ErrMessageNotFound      = Error("message not found")
	ErrEmptyMessage         = Error("message must contain text or an image")
	ErrInvalidImage         = Error("image must be a data URI or an http(s) URL")
	ErrImageTooLarge        = Error("image is too large")
	ErrUploadFailed         = Error("image upload failed")
	ErrInvalidUserId        = Error("invalid user id")
	ErrInvalidMessageId     = Error("invalid message id")
)

// Kind classifies an error for the response boundary.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
	KindStorage
	KindExternalService
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	case KindExternalService:
		return "external_service"
	default:
		return "unknown"
	}
}

// KindError attaches a Kind to an underlying error.
type KindError struct {
	Kind Kind
	Err  error
}

func (e *KindError) Error() string { return e.Err.Error() }

func (e *KindError) Unwrap() error { return e.Err }

func newKind(kind Kind, causes []error) error {
	var err error
	switch len(causes) {
	case 0:
		err = Error(kind.String())
	case 1:
		err = causes[0]
	default:
		err = errors.Join(causes...)
	}
	return &KindError{Kind: kind, Err: err}
}

func Validation(causes ...error) error      { return newKind(KindValidation, causes) }
func Auth(causes ...error) error            { return newKind(KindAuth, causes) }
func NotFound(causes ...error) error        { return newKind(KindNotFound, causes) }
func Conflict(causes ...error) error        { return newKind(KindConflict, causes) }
func Storage(causes ...error) error         { return newKind(KindStorage, causes) }
func ExternalService(causes ...error) error { return newKind(KindExternalService, causes) }

// KindOf returns the outermost Kind found in the chain.
func KindOf(err error) Kind {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool { return err != nil && KindOf(err) == kind }

// Messages flattens joined errors into their individual texts.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var ke *KindError
	if errors.As(err, &ke) {
		err = ke.Err
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, Messages(e)...)
		}
		return out
	}
	return strings.Split(err.Error(), "\n")
}

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrInvalidBaseURL = errors.New("invalid base URL")
	ErrInvalidTab     = errors.New("invalid tab")
	ErrInvalidTarget  = errors.New("invalid raw config target")
	ErrInvalidSection = errors.New("invalid section")
)

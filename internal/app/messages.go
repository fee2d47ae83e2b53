package app

import (
	"errors"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
)

// UserMessage turns an error from the services into the text of an error
// banner. Unknown errors are shown as is.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrTransport):
		return MsgBackendUnreachable
	case errors.Is(err, adapter.ErrNotJSON):
		return MsgNotJSON
	case errors.Is(err, adapter.ErrInvalidBaseURL):
		return MsgInvalidBaseURL
	case errors.Is(err, service.ErrInvalidYAML):
		return MsgCannotSaveInvalidYAML
	case errors.Is(err, service.ErrSaveInProgress):
		return MsgSaveInProgress
	default:
		return err.Error()
	}
}

// LoginMessage is [UserMessage] for the login form, where 401 means wrong
// credentials rather than an expired session.
func LoginMessage(err error) string {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return MsgInvalidLoginPassword
	}
	return UserMessage(err)
}

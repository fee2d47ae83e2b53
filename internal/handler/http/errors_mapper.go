package http

import (
	"errors"
	"net/http"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrEmptyUsername:  http.StatusBadRequest,
	validators.ErrEmptyPassword:  http.StatusBadRequest,
	validators.ErrInvalidBaseURL: http.StatusBadRequest,
	validators.ErrInvalidTab:     http.StatusNotFound,
	validators.ErrInvalidTarget:  http.StatusNotFound,
	validators.ErrInvalidSection: http.StatusNotFound,

	service.ErrUnknownSection:   http.StatusNotFound,
	service.ErrUnknownTarget:    http.StatusNotFound,
	service.ErrSectionNotObject: http.StatusUnprocessableEntity,
	service.ErrInvalidYAML:      http.StatusUnprocessableEntity,
	service.ErrNotMapping:       http.StatusUnprocessableEntity,
	service.ErrSaveInProgress:   http.StatusConflict,
	service.ErrNotLoaded:        http.StatusConflict,

	adapter.ErrUnauthorized:   http.StatusUnauthorized,
	adapter.ErrInvalidBaseURL: http.StatusBadRequest,
	adapter.ErrTransport:      http.StatusBadGateway,
	adapter.ErrNotJSON:        http.StatusBadGateway,
}

// statusFromError maps an error to the status of the page reporting it.
// Backend failures without a more specific entry are a bad gateway.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var fetchErr *adapter.FetchError
	var saveErr *adapter.SaveError
	if errors.As(err, &fetchErr) || errors.As(err, &saveErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

package adapter

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxMessageLen bounds how much of an error body ends up in messages.
const maxMessageLen = 200

// mapHTTPError returns a short message and the status sentinel for a non-2xx
// response. The error is nil for success.
func mapHTTPError(resp *resty.Response) (string, error) {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return "", nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxMessageLen {
		body = body[:maxMessageLen] + "..."
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return body, ErrBadRequest
	case http.StatusUnauthorized:
		return body, ErrUnauthorized
	case http.StatusForbidden:
		return body, ErrForbidden
	case http.StatusNotFound:
		return body, ErrNotFound
	case http.StatusUnprocessableEntity:
		return body, ErrUnprocessable
	case http.StatusInternalServerError:
		return body, ErrInternalServerError
	case http.StatusBadGateway:
		return body, ErrBadGateway
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return body, ErrUnavailable
	default:
		return body, ErrUnexpectedStatus
	}
}

// isJSON reports whether the response declares a JSON media type.
func isJSON(resp *resty.Response) bool {
	mediaType, _, err := mime.ParseMediaType(resp.Header().Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// mapRequestError classifies an error returned by resty. A reply that arrived
// but whose body failed to decode is ErrNotJSON with its status kept. Anything
// else never got a reply and is ErrTransport.
func mapRequestError(resp *resty.Response, err error) (int, error) {
	if resp != nil && resp.RawResponse != nil {
		return resp.StatusCode(), errors.Join(ErrNotJSON, err)
	}
	return 0, errors.Join(ErrTransport, err)
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/matrimony-client/pkg/api"
)

var (
	// ErrTimeout means the per-call deadline fired and the request was aborted
	ErrTimeout = errors.New("request timed out")

	// ErrNetwork wraps transport failures (DNS, connection refused, reset)
	ErrNetwork = errors.New("network error")

	// ErrNoRefreshToken is returned by RefreshToken when nothing is stored
	ErrNoRefreshToken = errors.New("no refresh token available")

	// ErrInvalidResponse means a 2xx body is not a valid envelope
	ErrInvalidResponse = errors.New("invalid response body")

	// ErrIncompleteSession means a successful login lacked token or user id
	ErrIncompleteSession = errors.New("login response is missing session fields")

	// ErrEmptyID is returned before any network call when a path id is empty
	ErrEmptyID = errors.New("id cannot be empty")
)

// APIError represents a non-2xx HTTP response
type APIError struct {
	StatusText string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError разбирает тело ошибки; невалидный JSON допустим
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		StatusText: http.StatusText(statusCode),
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			apiErr.Message = errResp.Message
		case errResp.Error != "":
			apiErr.Message = errResp.Error
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("HTTP %d: %s", statusCode, apiErr.StatusText)
	}

	return apiErr
}

// IsUnauthorized сообщает, что сервер отклонил токен (HTTP 401)
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

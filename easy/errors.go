package easy

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned before any network call when a
// ClientConfig has no environment or secret key
var ErrMissingCredentials = errors.New("easy client credentials missing")

// APIError is a non-success response from the Easy API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error status [%d] back from Easy: [%s]", e.StatusCode, e.Body)
}

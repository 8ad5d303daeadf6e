package nuagex

import (
	"errors"
	"fmt"
)

// AuthError indicates the login call was rejected.
type AuthError struct {
	Username string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("invalid NuageX credentials (username=%s, password=*****)", e.Username)
}

// APIError is any non-2xx response from an authenticated API call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("NuageX API error (status %d): %s", e.Status, e.Message)
}

// IsAuthError checks if an error is a rejected-credentials error.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

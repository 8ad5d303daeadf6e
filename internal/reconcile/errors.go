package reconcile

import (
	"errors"
	"fmt"

	"github.com/xlab-si/nuagex/internal/config"
)

// ErrNoTemplates indicates the account has no templates to default to.
var ErrNoTemplates = errors.New("no templates available on the NuageX account")

// TemplateNotFoundError indicates the requested template does not exist.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// WaitTimeoutError indicates a create or delete wait exhausted its poll
// budget before the lab reached the desired state.
type WaitTimeoutError struct {
	Name     string
	State    config.State
	Attempts int
}

func (e *WaitTimeoutError) Error() string {
	if e.State == config.StateAbsent {
		return fmt.Sprintf("lab %q was still present after %d poll attempts", e.Name, e.Attempts)
	}
	return fmt.Sprintf("lab %q did not reach running state after %d poll attempts", e.Name, e.Attempts)
}

// IsWaitTimeout checks if an error is an exhausted poll budget.
func IsWaitTimeout(err error) bool {
	var timeoutErr *WaitTimeoutError
	return errors.As(err, &timeoutErr)
}

// Package nuagex provides a minimal client for the NuageX lab-provisioning API.
package nuagex

import "context"

// API defines the NuageX operations the reconciler depends on.
type API interface {
	// Authenticate logs in and caches the bearer token for the lifetime of
	// the client. It is called eagerly so bad credentials fail fast, and
	// implicitly by the other methods when needed.
	Authenticate(ctx context.Context) error

	// LabByName returns the first lab matching name, or nil if none exists.
	LabByName(ctx context.Context, name string) (*Lab, error)

	// CreateLab requests creation of a new lab from the given template.
	// Creation is asynchronous on the remote side; the returned snapshot is
	// typically not yet running.
	CreateLab(ctx context.Context, name string, tpl Template) (*Lab, error)

	// DeleteLab requests deletion of the lab. Deletion is asynchronous on
	// the remote side.
	DeleteLab(ctx context.Context, lab *Lab) error

	// Templates returns all templates available to the account.
	Templates(ctx context.Context) ([]Template, error)
}

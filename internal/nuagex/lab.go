package nuagex

import "fmt"

// Status is the lifecycle status of a lab as reported by the NuageX service.
type Status string

const (
	// StatusPending covers labs that are still being provisioned.
	StatusPending Status = "pending"
	// StatusStarted is the only status in which a lab is usable.
	StatusStarted Status = "started"
	// StatusError covers backend-reported failure states.
	StatusError Status = "error"
	// StatusUnknown covers any status string the service may add later.
	StatusUnknown Status = "unknown"
)

// ParseStatus maps a raw status string onto the closed Status set.
// Unrecognized strings map to StatusUnknown rather than failing, since the
// service does not document its full status vocabulary.
func ParseStatus(raw string) Status {
	switch raw {
	case "pending", "starting", "creating", "queued":
		return StatusPending
	case "started":
		return StatusStarted
	case "error", "failed":
		return StatusError
	default:
		return StatusUnknown
	}
}

// Lab is an immutable snapshot of a remote sandbox lab. Snapshots are never
// mutated in place; re-fetch to observe newer state.
type Lab struct {
	ID       string
	Name     string
	Status   Status
	Address  string
	Password string
}

// Running reports whether the lab is usable. Only StatusStarted counts;
// every other status (including error states) is treated as not yet ready.
func (l *Lab) Running() bool {
	return l.Status == StatusStarted
}

// Access conventions for the services running inside a lab. The ports and
// users are fixed by the NuageX images, only the address varies per lab.
const (
	webPort = 8443
	webUser = "csproot"
	webOrg  = "csp"

	amqpPort = 5672
	amqpUser = "jmsuser@system"
)

// WebAccess describes how to reach the lab's VSD web UI.
type WebAccess struct {
	Address      string `json:"address"`
	User         string `json:"user"`
	Password     string `json:"password"`
	Organization string `json:"org"`
}

// AMQPAccess describes how to reach the lab's messaging endpoint.
type AMQPAccess struct {
	Address  string `json:"address"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Web returns the derived web UI endpoint for the lab.
func (l *Lab) Web() WebAccess {
	return WebAccess{
		Address:      fmt.Sprintf("https://%s:%d", l.Address, webPort),
		User:         webUser,
		Password:     l.Password,
		Organization: webOrg,
	}
}

// AMQP returns the derived messaging endpoint for the lab.
func (l *Lab) AMQP() AMQPAccess {
	return AMQPAccess{
		Address:  fmt.Sprintf("%s:%d", l.Address, amqpPort),
		User:     amqpUser,
		Password: l.Password,
	}
}

// labPayload is the wire shape of a lab in NuageX API responses.
type labPayload struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	ExternalIP string `json:"externalIP"`
	Password   string `json:"password"`
}

// lab converts a decoded payload into a Lab snapshot.
func (p labPayload) lab() *Lab {
	return &Lab{
		ID:       p.ID,
		Name:     p.Name,
		Status:   ParseStatus(p.Status),
		Address:  p.ExternalIP,
		Password: p.Password,
	}
}

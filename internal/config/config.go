// Package config handles nuagex configuration: the nuagex.yaml file,
// credential resolution, and environment-tunable timeouts.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Environment variables consulted when the config file carries no credentials.
const (
	EnvUsername = "NUX_USERNAME"
	EnvPassword = "NUX_PASSWORD"
)

// ErrMissingCredentials indicates that neither the configuration nor the
// environment provided a full set of credentials.
var ErrMissingCredentials = errors.New("missing NuageX credentials: set auth in the config file or the NUX_USERNAME and NUX_PASSWORD environment variables")

// State is the desired lifecycle state of a lab.
type State string

const (
	// StatePresent means the lab should exist and be running.
	StatePresent State = "present"
	// StateAbsent means the lab should not exist.
	StateAbsent State = "absent"
)

// ParseState validates a state string.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StatePresent, StateAbsent:
		return State(s), nil
	case "":
		return StatePresent, nil
	default:
		return "", fmt.Errorf("invalid state %q (expected %q or %q)", s, StatePresent, StateAbsent)
	}
}

// Auth holds NuageX account credentials.
type Auth struct {
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Config is the declarative input for one reconciliation.
type Config struct {
	Name     string `yaml:"name"`
	State    State  `yaml:"state,omitempty"`
	Template string `yaml:"template,omitempty"`
	Auth     Auth   `yaml:"auth,omitempty"`
}

// Validate checks the configuration for structural problems. Credentials are
// validated separately by ResolveAuth since they may come from the environment.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("lab name is required")
	}
	if _, err := ParseState(string(c.State)); err != nil {
		return err
	}
	return nil
}

// ResolveAuth returns the effective credentials: explicit fields win, empty
// fields fall back to the environment per field. Missing username or password
// after fallback is ErrMissingCredentials.
func (c *Config) ResolveAuth() (Auth, error) {
	auth := c.Auth
	if auth.Username == "" {
		auth.Username = os.Getenv(EnvUsername)
	}
	if auth.Password == "" {
		auth.Password = os.Getenv(EnvPassword)
	}
	if auth.Username == "" || auth.Password == "" {
		return Auth{}, ErrMissingCredentials
	}
	return auth, nil
}

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	Name     string
	State    State
	Template string
	Username string
	Password string
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		State: StatePresent,
	}

	form := huh.NewForm(
		// Lab identity
		huh.NewGroup(
			huh.NewInput().
				Title("Lab name").
				Description("A unique name for your sandbox lab").
				Placeholder("my-lab").
				Value(&result.Name).
				Validate(validateLabName),
		),

		// Desired state
		huh.NewGroup(
			huh.NewSelect[State]().
				Title("Desired state").
				Description("present: ensure the lab exists and is running | absent: ensure it is gone").
				Options(
					huh.NewOption("Present (running lab)", StatePresent),
					huh.NewOption("Absent (no lab)", StateAbsent),
				).
				Value(&result.State),
		),

		// Optional template
		huh.NewGroup(
			huh.NewInput().
				Title("Template (optional)").
				Description("Exact template name. Leave empty to use the first available template.").
				Value(&result.Template),
		),

		// Credentials
		huh.NewGroup(
			huh.NewInput().
				Title("NuageX username (optional)").
				Description(fmt.Sprintf("Leave empty to read %s at run time.", EnvUsername)).
				Value(&result.Username),

			huh.NewInput().
				Title("NuageX password (optional)").
				Description(fmt.Sprintf("Leave empty to read %s at run time.", EnvPassword)).
				EchoMode(huh.EchoModePassword).
				Value(&result.Password),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config.
func (r *WizardResult) ToConfig() *Config {
	return &Config{
		Name:     r.Name,
		State:    r.State,
		Template: r.Template,
		Auth: Auth{
			Username: r.Username,
			Password: r.Password,
		},
	}
}

// validateLabName validates the lab name.
func validateLabName(s string) error {
	if s == "" {
		return fmt.Errorf("lab name is required")
	}
	if len(s) > 63 {
		return fmt.Errorf("lab name must be 63 characters or less")
	}
	if strings.TrimSpace(s) != s {
		return fmt.Errorf("lab name cannot have leading or trailing whitespace")
	}
	return nil
}

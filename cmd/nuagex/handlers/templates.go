package handlers

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/xlab-si/nuagex/internal/nuagex"
)

// TemplatesOptions are the inputs for the templates command.
type TemplatesOptions struct {
	ConfigPath string
	Output     string
}

// Templates lists the lab templates available to the account, sorted by
// name. The first entry is the one apply picks when no template is
// configured.
func Templates(ctx context.Context, opts TemplatesOptions) error {
	auth, err := resolveAuth(opts.ConfigPath)
	if err != nil {
		return err
	}

	timeouts := loadTimeouts()
	api := newAPIClient(auth, timeouts)

	if err := api.Authenticate(ctx); err != nil {
		return err
	}

	templates, err := api.Templates(ctx)
	if err != nil {
		return err
	}

	sorted := slices.Clone(templates)
	slices.SortFunc(sorted, func(a, b nuagex.Template) int {
		return strings.Compare(a.Name, b.Name)
	})

	if opts.Output == OutputJSON {
		return encodeJSON(sorted)
	}

	if len(sorted) == 0 {
		fmt.Fprintln(stdout, "No templates available.")
		return nil
	}

	for i, tpl := range sorted {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(stdout, "%s %-40s %s\n", marker, tpl.Name, tpl.ID)
	}
	fmt.Fprintln(stdout, "\n* default when no template is configured")
	return nil
}

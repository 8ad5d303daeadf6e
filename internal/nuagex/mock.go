package nuagex

import "context"

// MockAPI is a func-field mock implementation of API for tests. Call counters
// track how often each operation was invoked. Unset funcs succeed with zero
// values so tests only script what they assert on.
type MockAPI struct {
	AuthenticateFunc func(ctx context.Context) error
	LabByNameFunc    func(ctx context.Context, name string) (*Lab, error)
	CreateLabFunc    func(ctx context.Context, name string, tpl Template) (*Lab, error)
	DeleteLabFunc    func(ctx context.Context, lab *Lab) error
	TemplatesFunc    func(ctx context.Context) ([]Template, error)

	AuthenticateCalls int
	LabByNameCalls    int
	CreateLabCalls    int
	DeleteLabCalls    int
	TemplatesCalls    int
}

func (m *MockAPI) Authenticate(ctx context.Context) error {
	m.AuthenticateCalls++
	if m.AuthenticateFunc == nil {
		return nil
	}
	return m.AuthenticateFunc(ctx)
}

func (m *MockAPI) LabByName(ctx context.Context, name string) (*Lab, error) {
	m.LabByNameCalls++
	if m.LabByNameFunc == nil {
		return nil, nil
	}
	return m.LabByNameFunc(ctx, name)
}

func (m *MockAPI) CreateLab(ctx context.Context, name string, tpl Template) (*Lab, error) {
	m.CreateLabCalls++
	if m.CreateLabFunc == nil {
		return &Lab{Name: name, Status: StatusPending}, nil
	}
	return m.CreateLabFunc(ctx, name, tpl)
}

func (m *MockAPI) DeleteLab(ctx context.Context, lab *Lab) error {
	m.DeleteLabCalls++
	if m.DeleteLabFunc == nil {
		return nil
	}
	return m.DeleteLabFunc(ctx, lab)
}

func (m *MockAPI) Templates(ctx context.Context) ([]Template, error) {
	m.TemplatesCalls++
	if m.TemplatesFunc == nil {
		return nil, nil
	}
	return m.TemplatesFunc(ctx)
}

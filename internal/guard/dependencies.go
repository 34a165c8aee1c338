package guard

import "context"

// InferenceClient exposes the backend operations used by the audit workflow.
type InferenceClient interface {
	HealthCheck(executionContext context.Context) bool
	Generate(executionContext context.Context, prompt string) (string, error)
	BaseURL() string
	ModelName() string
}

// FileLocator finds auditable files beneath the provided scan roots.
type FileLocator interface {
	DiscoverFiles(roots []string) ([]string, error)
}

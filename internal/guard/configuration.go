package guard

import (
	"strings"
	"time"
)

const (
	defaultBackendURLConstant     = "http://localhost:11434"
	defaultModelNameConstant      = "gpt-oss:20b-cloud"
	defaultTimeoutSecondsConstant = 120

	backendURLConfigurationKeyConstant          = "backend_url"
	modelConfigurationKeyConstant               = "model"
	timeoutSecondsConfigurationKeyConstant      = "timeout_seconds"
	extensionsConfigurationKeyConstant          = "extensions"
	excludedDirectoriesConfigurationKeyConstant = "excluded_directories"
	configurationKeySeparatorConstant           = "."
)

// defaultAuditableExtensions lists the file suffixes eligible for auditing.
func defaultAuditableExtensions() []string {
	return []string{".ts", ".js", ".py", ".tsx", ".jsx", ".env", ".test.ts", ".spec.ts"}
}

// defaultExcludedDirectories lists directory names skipped during scans.
func defaultExcludedDirectories() []string {
	return []string{".git", "node_modules", "__pycache__", ".venv", "venv", "dist", "build", ".env.local", ".idx", ".vscode", ".next"}
}

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	BackendURL          string   `mapstructure:"backend_url"`
	Model               string   `mapstructure:"model"`
	TimeoutSeconds      int      `mapstructure:"timeout_seconds"`
	Extensions          []string `mapstructure:"extensions"`
	ExcludedDirectories []string `mapstructure:"excluded_directories"`
}

// DefaultCommandConfiguration returns baseline configuration values for the audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		BackendURL:          defaultBackendURLConstant,
		Model:               defaultModelNameConstant,
		TimeoutSeconds:      defaultTimeoutSecondsConstant,
		Extensions:          defaultAuditableExtensions(),
		ExcludedDirectories: defaultExcludedDirectories(),
	}
}

// DefaultConfigurationValues maps configuration keys beneath the provided prefix to their defaults.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationPrefix + configurationKeySeparatorConstant + backendURLConfigurationKeyConstant:          defaults.BackendURL,
		configurationPrefix + configurationKeySeparatorConstant + modelConfigurationKeyConstant:               defaults.Model,
		configurationPrefix + configurationKeySeparatorConstant + timeoutSecondsConfigurationKeyConstant:      defaults.TimeoutSeconds,
		configurationPrefix + configurationKeySeparatorConstant + extensionsConfigurationKeyConstant:          defaults.Extensions,
		configurationPrefix + configurationKeySeparatorConstant + excludedDirectoriesConfigurationKeyConstant: defaults.ExcludedDirectories,
	}
}

// Timeout converts the configured timeout seconds into a duration.
func (configuration CommandConfiguration) Timeout() time.Duration {
	return time.Duration(configuration.TimeoutSeconds) * time.Second
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	sanitized.BackendURL = strings.TrimSpace(configuration.BackendURL)
	if len(sanitized.BackendURL) == 0 {
		sanitized.BackendURL = defaults.BackendURL
	}

	sanitized.Model = strings.TrimSpace(configuration.Model)
	if len(sanitized.Model) == 0 {
		sanitized.Model = defaults.Model
	}

	if sanitized.TimeoutSeconds <= 0 {
		sanitized.TimeoutSeconds = defaults.TimeoutSeconds
	}

	sanitized.Extensions = sanitizeValueList(configuration.Extensions)
	if len(sanitized.Extensions) == 0 {
		sanitized.Extensions = defaults.Extensions
	}

	sanitized.ExcludedDirectories = sanitizeValueList(configuration.ExcludedDirectories)
	if len(sanitized.ExcludedDirectories) == 0 {
		sanitized.ExcludedDirectories = defaults.ExcludedDirectories
	}

	return sanitized
}

func sanitizeValueList(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}

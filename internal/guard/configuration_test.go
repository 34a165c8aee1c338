package guard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/aiguard/internal/guard"
)

const configurationPrefixConstant = "tools.audit"

func TestDefaultCommandConfiguration(testInstance *testing.T) {
	configuration := guard.DefaultCommandConfiguration()

	require.Equal(testInstance, "http://localhost:11434", configuration.BackendURL)
	require.Equal(testInstance, "gpt-oss:20b-cloud", configuration.Model)
	require.Equal(testInstance, 120, configuration.TimeoutSeconds)
	require.Contains(testInstance, configuration.Extensions, ".py")
	require.Contains(testInstance, configuration.Extensions, ".spec.ts")
	require.Contains(testInstance, configuration.ExcludedDirectories, "node_modules")
	require.Contains(testInstance, configuration.ExcludedDirectories, ".git")
}

func TestTimeoutConvertsSecondsToDuration(testInstance *testing.T) {
	configuration := guard.CommandConfiguration{TimeoutSeconds: 45}
	require.Equal(testInstance, 45*time.Second, configuration.Timeout())
}

func TestDefaultConfigurationValuesUsesPrefix(testInstance *testing.T) {
	values := guard.DefaultConfigurationValues(configurationPrefixConstant)

	require.Equal(testInstance, "http://localhost:11434", values["tools.audit.backend_url"])
	require.Equal(testInstance, "gpt-oss:20b-cloud", values["tools.audit.model"])
	require.Equal(testInstance, 120, values["tools.audit.timeout_seconds"])
	require.NotEmpty(testInstance, values["tools.audit.extensions"])
	require.NotEmpty(testInstance, values["tools.audit.excluded_directories"])
}

package guard

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/aiguard/internal/discovery"
	"github.com/temirov/aiguard/internal/ollama"
	"github.com/temirov/aiguard/internal/utils"
	pathutils "github.com/temirov/aiguard/internal/utils/path"
)

const (
	commandUseConstant              = "audit [file...]"
	commandShortDescriptionConstant = "Audit files for hardcoded secrets and code-quality anti-patterns"
	commandLongDescriptionConstant  = "audit sends each file to a locally hosted language model and classifies the response as REJECT, FLAG, or PASS. Explicit file arguments are audited as given; without arguments the scan roots are searched for auditable files."

	flagRootNameConstant           = "root"
	flagRootUsageConstant          = "Scan roots searched for auditable files when no file arguments are given."
	flagBackendURLNameConstant     = "backend-url"
	flagBackendURLUsageConstant    = "Override the configured inference backend address."
	flagModelNameConstant          = "model"
	flagModelUsageConstant         = "Override the configured model identifier."
	flagTimeoutSecondsNameConstant = "timeout-seconds"
	flagTimeoutSecondsUsage        = "Override the configured generation timeout in seconds."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted audit command configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	InferenceClient       InferenceClient
	FileLocator           FileLocator
	Clock                 Clock
}

// Build constructs the cobra command for the file audit workflow.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().StringSlice(flagRootNameConstant, nil, flagRootUsageConstant)
	command.Flags().String(flagBackendURLNameConstant, "", flagBackendURLUsageConstant)
	command.Flags().String(flagModelNameConstant, "", flagModelUsageConstant)
	command.Flags().Int(flagTimeoutSecondsNameConstant, 0, flagTimeoutSecondsUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	if command.Flags().Changed(flagBackendURLNameConstant) {
		configuration.BackendURL, _ = command.Flags().GetString(flagBackendURLNameConstant)
	}
	if command.Flags().Changed(flagModelNameConstant) {
		configuration.Model, _ = command.Flags().GetString(flagModelNameConstant)
	}
	if command.Flags().Changed(flagTimeoutSecondsNameConstant) {
		configuration.TimeoutSeconds, _ = command.Flags().GetInt(flagTimeoutSecondsNameConstant)
	}
	configuration = configuration.sanitize()

	filePathSanitizer := pathutils.NewAuditPathSanitizer()
	filePaths := filePathSanitizer.Sanitize(arguments)

	rootFlagValues, _ := command.Flags().GetStringSlice(flagRootNameConstant)
	rootSanitizer := pathutils.NewAuditPathSanitizerWithOptions(nil, true)
	roots := rootSanitizer.Sanitize(rootFlagValues)

	inferenceClient := builder.InferenceClient
	if inferenceClient == nil {
		inferenceClient = ollama.NewClient(configuration.BackendURL, configuration.Model, configuration.Timeout())
	}

	fileLocator := builder.FileLocator
	if fileLocator == nil {
		fileLocator = discovery.NewFilesystemFileLocator(configuration.Extensions, configuration.ExcludedDirectories)
	}

	service := NewService(
		inferenceClient,
		fileLocator,
		NewReportRenderer(),
		utils.NewFlushingWriter(command.OutOrStdout()),
		command.ErrOrStderr(),
		builder.resolveLogger(),
		builder.Clock,
		configuration.Extensions,
	)

	options := CommandOptions{
		FilePaths: filePaths,
		Roots:     roots,
	}

	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

package guard

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultScanRootConstant = "."

	fileNotFoundTemplateConstant       = "file not found: %s"
	fileReadErrorTemplateConstant      = "unable to read file %s: %v"
	backendUnavailableTemplateConstant = "backend not available at %s; start it with: ollama serve"

	headerTitleConstant                 = "AIGUARD - Code Quality & Security Auditor"
	headerModelTemplateConstant         = "Model: %s\n"
	headerBackendTemplateConstant       = "Backend: %s\n"
	headerFileCountTemplateConstant     = "Files to audit: %d\n"
	progressTemplateConstant            = "\n[%d/%d] Processing: %s\n"
	noAuditableFilesMessageConstant     = "No auditable files found."
	supportedExtensionsTemplateConstant = "Supported extensions: %s\n"
	noAuditableFilesErrorTemplate       = "no auditable files found under: %s"
	auditRejectedErrorTemplate          = "audit rejected %d file(s)"

	auditCompletedLogMessageConstant = "file audit completed"
	logFieldFilePathConstant         = "file_path"
	logFieldStatusConstant           = "status"
	logFieldModelConstant            = "model"
)

// Service coordinates file discovery, auditing, and report rendering.
type Service struct {
	inferenceClient InferenceClient
	fileLocator     FileLocator
	renderer        *ReportRenderer
	outputWriter    io.Writer
	errorWriter     io.Writer
	logger          *zap.Logger
	clock           Clock
	extensions      []string
}

// NewService constructs a Service using the provided dependencies.
func NewService(inferenceClient InferenceClient, fileLocator FileLocator, renderer *ReportRenderer, outputWriter io.Writer, errorWriter io.Writer, logger *zap.Logger, clock Clock, extensions []string) *Service {
	if renderer == nil {
		renderer = NewReportRenderer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{
		inferenceClient: inferenceClient,
		fileLocator:     fileLocator,
		renderer:        renderer,
		outputWriter:    outputWriter,
		errorWriter:     errorWriter,
		logger:          logger,
		clock:           clock,
		extensions:      extensions,
	}
}

// Run audits the explicitly provided files, or every auditable file discovered
// beneath the scan roots when none are given, rendering per-file reports and a
// summary. It returns an error when any file is rejected or a scan finds no
// auditable files, so the process exits non-zero in both cases.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	filePaths := options.FilePaths
	if len(filePaths) == 0 {
		roots := options.Roots
		if len(roots) == 0 {
			roots = []string{defaultScanRootConstant}
		}

		discoveredFiles, discoveryError := service.fileLocator.DiscoverFiles(roots)
		if discoveryError != nil {
			return discoveryError
		}

		if len(discoveredFiles) == 0 {
			fmt.Fprintln(service.outputWriter, noAuditableFilesMessageConstant)
			fmt.Fprintf(service.outputWriter, supportedExtensionsTemplateConstant, strings.Join(service.extensions, ", "))
			return fmt.Errorf(noAuditableFilesErrorTemplate, strings.Join(roots, " "))
		}

		filePaths = discoveredFiles
	}

	service.renderHeader(len(filePaths))

	results := service.BatchAudit(executionContext, filePaths)
	for _, result := range results {
		service.renderer.Render(service.outputWriter, result)
	}

	summary := Summarize(results)
	service.renderer.RenderSummary(service.outputWriter, summary)

	if summary.Rejected > 0 {
		return fmt.Errorf(auditRejectedErrorTemplate, summary.Rejected)
	}
	return nil
}

// AuditFile audits a single file and never returns an error: any inability to
// complete a clean audit produces a REJECT result carrying the failure reason.
func (service *Service) AuditFile(executionContext context.Context, filePath string) AuditResult {
	fileInfo, statError := os.Stat(filePath)
	if statError != nil || !fileInfo.Mode().IsRegular() {
		return service.failureResult(filePath, fmt.Sprintf(fileNotFoundTemplateConstant, filePath))
	}

	if !service.inferenceClient.HealthCheck(executionContext) {
		return service.failureResult(filePath, fmt.Sprintf(backendUnavailableTemplateConstant, service.inferenceClient.BaseURL()))
	}

	fileContent, readError := os.ReadFile(filePath)
	if readError != nil {
		return service.failureResult(filePath, fmt.Sprintf(fileReadErrorTemplateConstant, filePath, readError))
	}

	fileType := ClassifyFileType(filePath)
	prompt := BuildPrompt(filePath, string(fileContent), fileType, service.clock.Now())

	responseText, generateError := service.inferenceClient.Generate(executionContext, prompt)
	if generateError != nil {
		return service.failureResult(filePath, generateError.Error())
	}

	return AuditResult{
		ID:        uuid.New(),
		Status:    ParseVerdict(responseText),
		FilePath:  filePath,
		Report:    responseText,
		Model:     service.inferenceClient.ModelName(),
		Timestamp: service.clock.Now(),
	}
}

// BatchAudit audits the provided files strictly sequentially, producing one
// result per input path in input order. One file's failure never aborts the batch.
func (service *Service) BatchAudit(executionContext context.Context, filePaths []string) []AuditResult {
	results := make([]AuditResult, 0, len(filePaths))
	for fileIndex, filePath := range filePaths {
		fmt.Fprintf(service.errorWriter, progressTemplateConstant, fileIndex+1, len(filePaths), filePath)

		result := service.AuditFile(executionContext, filePath)
		results = append(results, result)

		service.logger.Info(
			auditCompletedLogMessageConstant,
			zap.String(logFieldFilePathConstant, result.FilePath),
			zap.String(logFieldStatusConstant, string(result.Status)),
			zap.String(logFieldModelConstant, result.Model),
		)
	}
	return results
}

func (service *Service) failureResult(filePath string, errorMessage string) AuditResult {
	return AuditResult{
		ID:           uuid.New(),
		Status:       SeverityReject,
		FilePath:     filePath,
		ErrorMessage: errorMessage,
		Model:        service.inferenceClient.ModelName(),
		Timestamp:    service.clock.Now(),
	}
}

func (service *Service) renderHeader(fileCount int) {
	fmt.Fprintln(service.outputWriter, reportBannerConstant)
	fmt.Fprintln(service.outputWriter, headerTitleConstant)
	fmt.Fprintln(service.outputWriter, reportBannerConstant)
	fmt.Fprintf(service.outputWriter, headerModelTemplateConstant, service.inferenceClient.ModelName())
	fmt.Fprintf(service.outputWriter, headerBackendTemplateConstant, service.inferenceClient.BaseURL())
	fmt.Fprintf(service.outputWriter, headerFileCountTemplateConstant, fileCount)
	fmt.Fprintln(service.outputWriter, reportBannerConstant)
}

package tests

import (
	"context"
	"os/exec"
	"testing"
	"time"
)

func runAuditCommand(testInstance *testing.T, repositoryRoot string, timeout time.Duration, arguments []string) (string, int) {
	testInstance.Helper()

	executionContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	command := exec.CommandContext(executionContext, "go", arguments...)
	command.Dir = repositoryRoot

	outputBytes, runError := command.CombinedOutput()
	outputText := string(outputBytes)

	if runError == nil {
		return outputText, 0
	}

	exitError, isExitError := runError.(*exec.ExitError)
	if !isExitError {
		testInstance.Fatalf("command failed to run: %v\n%s", runError, outputText)
	}
	return outputText, exitError.ExitCode()
}

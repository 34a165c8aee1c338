package guard

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies the outcome of a single file audit.
type Severity string

// Verdict severities produced by the audit workflow.
const (
	SeverityReject Severity = "REJECT"
	SeverityFlag   Severity = "FLAG"
	SeverityPass   Severity = "PASS"
)

// AuditResult captures the immutable outcome of auditing one file.
// Report carries the raw model response on a completed audit; ErrorMessage
// carries the failure description when the audit could not complete.
type AuditResult struct {
	ID           uuid.UUID
	Status       Severity
	FilePath     string
	Report       string
	ErrorMessage string
	Model        string
	Timestamp    time.Time
}

// CommandOptions captures the configurable parameters for the audit command.
type CommandOptions struct {
	FilePaths []string
	Roots     []string
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

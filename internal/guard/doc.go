// Package guard implements the file auditing workflow used by the aiguard CLI.
//
// It exposes CommandBuilder for wiring the audit Cobra command, Service for
// driving audits programmatically, and supporting abstractions for file
// discovery, inference, verdict classification, and report rendering.
package guard

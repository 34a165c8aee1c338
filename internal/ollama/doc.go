// Package ollama implements the HTTP inference client used by the aiguard CLI.
//
// It exposes Client for issuing health checks against a running Ollama
// service and single-shot, non-streaming generation requests, together with
// typed errors that let callers distinguish backend status failures from
// timeouts and transport faults.
package ollama

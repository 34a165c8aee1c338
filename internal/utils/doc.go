// Package utils exposes reusable helpers consumed by the aiguard commands.
//
// It currently houses ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging for the CLI.
package utils

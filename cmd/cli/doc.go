// Package cli assembles the aiguard command-line application: the Cobra root
// command, configuration loading, and structured logging shared by subcommands.
package cli

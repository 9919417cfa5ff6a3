// Package app wires application dependencies for the CLI.
//
// It resolves Config from defaults, an optional .env file and the
// environment, builds the logger, and constructs the profile store, profile
// directory and session exposed via the Wire struct for commands to use.
package app

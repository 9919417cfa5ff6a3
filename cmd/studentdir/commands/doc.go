// Package commands defines the studentdir CLI and wires dependencies for subcommands.
//
// Commands
//
//   - shell      Interactive menu (the default when no subcommand is given)
//   - register   Create a student profile
//   - login      Check a username and password
//   - show       Print a profile
//   - update     Change profile fields; blank flags keep the stored value
//   - passwd     Change a password
//
// # Implementation
//
// The root command resolves configuration, builds the logger and loads the
// profile directory before any subcommand runs, so handlers share one
// app.Wire. Log output goes to stderr; operator-facing text goes to stdout.
package commands

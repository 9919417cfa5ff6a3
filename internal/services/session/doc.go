// Package session tracks the single authenticated operator of the process.
//
// It holds at most one Session. A successful login replaces whatever session
// was active; failures leave it untouched. Sessions are never persisted.
package session

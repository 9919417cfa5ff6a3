// Package credential hashes and verifies student passwords.
//
// All credential comparison in the application goes through Bcrypt so the
// storage scheme can change without touching callers. Hashes are bcrypt
// strings; verification is constant-time.
package credential

// Package profile owns the student directory: the in-memory mapping from
// username to profile, its persistence, and the register, authenticate,
// update and change-password operations.
//
// Every mutation is written to the backing store before it becomes visible in
// memory, so a failed write leaves both unchanged.
package profile

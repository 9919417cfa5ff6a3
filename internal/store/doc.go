// Package store provides file-based persistence for the student directory.
//
// ProfileFileStore keeps the whole username -> profile mapping in a single
// JSON document under the configured home directory. Writes go to a temp
// file that is renamed over the target, so readers never observe a partial
// document. Methods are concurrency-safe via internal locking.
package store

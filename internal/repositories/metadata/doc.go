// Package metadata provides the persistent key-value slot the account store
// mirrors its list into.
//
// Repository is a byte-oriented key/value contract. Three implementations
// exist:
//
//   - SQLiteRepository: a metadata(key, value) table over dbx (default)
//   - FileRepository: one <key>.json file per key, atomically replaced
//   - MemoryRepository: process-local map, mostly for tests
//
// Get returns (nil, nil) for a missing key; Delete is idempotent; Rename
// moves a value under a new key and fails with common.ErrorNotFound when the
// source is absent.
package metadata

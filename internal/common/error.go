// Package common defines shared constants and sentinel errors used across
// the accountkeeper store, its storage backends and the CLI. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorInvalidKey = errors.New("invalid storage key")

	// Store-level errors.
	ErrorPersistence     = errors.New("persistence write failed")
	ErrorCorruptSnapshot = errors.New("corrupt persisted snapshot")
	ErrorIDCollision     = errors.New("could not generate a unique id")

	// Validation errors.
	ErrorInvalidAccountType = errors.New("invalid account type")
	ErrorInvalidConfig      = errors.New("invalid config")
)

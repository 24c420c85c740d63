package common

// DefaultStorageKey is the key under which the whole account list is
// persisted in the key-value slot.
const DefaultStorageKey = "accounts"

// CorruptSuffix is appended to the storage key when an unreadable snapshot
// is moved aside during load.
const CorruptSuffix = ".corrupt"

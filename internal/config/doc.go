// Package config loads runtime configuration for the accountkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. Command-line flags the user explicitly set, which override earlier values.
//
// Supported flags
//
//	--backend string       storage backend: sqlite, file or memory
//	--data string          sqlite database path or file backend directory
//	--key string           storage key holding the account list
//	--id-strategy string   id generator: uuid7, uuid4 or legacy
//	--log-level string     debug, info, warn or error
//	--log-format string    text, json or pretty
//
// # JSON schema
//
// Every field is optional; absent fields keep their default:
//
//	{
//	  "backend": "file",
//	  "data_path": "/home/me/.accountkeeper",
//	  "storage_key": "accounts",
//	  "id_strategy": "uuid7",
//	  "log_level": "debug",
//	  "log_format": "pretty"
//	}
//
// Unlike flags, configuration problems are returned as errors wrapping
// common.ErrorInvalidConfig; nothing here panics.
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage types accepted by [Storage.Type].
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
)

// Key repository backends accepted by [Keys.Backend].
const (
	KeyBackendKeyring = "keyring"
	KeyBackendFile    = "file"
	KeyBackendMemory  = "memory"
)

// Cipher algorithms accepted by [Crypto.Algorithm].
const (
	AlgorithmXChaCha20Poly1305 = "xchacha20poly1305"
	AlgorithmAES256GCM         = "aes256gcm"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage configures the persistent store manager.
	Storage Storage `envPrefix:"STORAGE_"`

	// Keys configures the shared key repository.
	Keys Keys `envPrefix:"KEYS_"`

	// Crypto configures the field-level cryptography service.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Sync configures the periodic remote sync job.
	Sync Sync `envPrefix:"SYNC_"`

	// App configures the bridge process itself.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage holds the persistent store settings.
type Storage struct {
	// Type selects the backing engine: "file" (default) or "memory".
	// Env: STORAGE_TYPE
	Type string `env:"TYPE"`

	// GroupID is the shared namespace identifier. Two cooperating
	// applications that use the same GroupID and SharedDir reach the same
	// store file.
	// Env: STORAGE_GROUP_ID
	GroupID string `env:"GROUP_ID"`

	// SharedDir is the root directory holding group containers. When empty
	// the user configuration directory is used.
	// Env: STORAGE_SHARED_DIR
	SharedDir string `env:"SHARED_DIR"`

	// FileName is the store file name inside the group container.
	// Env: STORAGE_FILE_NAME
	FileName string `env:"FILE_NAME"`

	// WatchExternal enables the cross-process change watcher for
	// file-backed stores.
	// Env: STORAGE_WATCH_EXTERNAL
	WatchExternal bool `env:"WATCH_EXTERNAL"`

	// BusyTimeout bounds how long a connection waits on a lock held by
	// another process (e.g. "5s").
	// Env: STORAGE_BUSY_TIMEOUT
	BusyTimeout time.Duration `env:"BUSY_TIMEOUT"`
}

// Keys holds the shared key repository settings.
type Keys struct {
	// Backend selects "keyring" (OS credential store), "file" or "memory".
	// Env: KEYS_BACKEND
	Backend string `env:"BACKEND"`

	// ServiceName is the credential-store service the key lives under.
	// Defaults to Storage.GroupID.
	// Env: KEYS_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// FileDir is the directory used by the "file" backend and by the
	// keyring encrypted-file fallback.
	// Env: KEYS_FILE_DIR
	FileDir string `env:"FILE_DIR"`

	// FilePassword unlocks the keyring encrypted-file fallback.
	// Env: KEYS_FILE_PASSWORD
	FilePassword string `env:"FILE_PASSWORD"`

	// KeyName is the well-known entry name of the shared symmetric key.
	// Env: KEYS_KEY_NAME
	KeyName string `env:"KEY_NAME"`
}

// Crypto holds cryptography service settings.
type Crypto struct {
	// Algorithm used for new ciphertext. Decryption always honours the
	// algorithm recorded in the ciphertext itself.
	// Env: CRYPTO_ALGORITHM
	Algorithm string `env:"ALGORITHM"`
}

// Sync holds settings for the periodic remote sync job.
type Sync struct {
	// Interval between two sync rounds (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// SourceURL is the base URL of the remote sync endpoint. When empty
	// and SourceFile is empty, no sync job runs.
	// Env: SYNC_SOURCE_URL
	SourceURL string `env:"SOURCE_URL"`

	// SourceFile is a JSON export used as the sync source instead of
	// SourceURL.
	// Env: SYNC_SOURCE_FILE
	SourceFile string `env:"SOURCE_FILE"`

	// Token is sent as a bearer token to SourceURL.
	// Env: SYNC_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds one request to SourceURL.
	// Env: SYNC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// App holds settings of the bridge process.
type App struct {
	// UserID is the account whose data the bridge serves.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// Follow keeps the process running and prints every new snapshot of
	// the user's bridge items.
	// Env: APP_FOLLOW
	Follow bool `env:"FOLLOW"`

	// LogFile redirects log output from stdout to a file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Defaults returns the configuration applied underneath every other source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Type:        StorageTypeFile,
			GroupID:     "group.com.example.passbridge",
			FileName:    "bridge.sqlite",
			BusyTimeout: 5 * time.Second,
		},
		Keys: Keys{
			Backend: KeyBackendKeyring,
			KeyName: "com.example.passbridge.sharedKey",
		},
		Crypto: Crypto{
			Algorithm: AlgorithmXChaCha20Poly1305,
		},
		Sync: Sync{
			Interval:       5 * time.Minute,
			RequestTimeout: 15 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. It also fills derived values,
// such as the key service name, that default to other fields.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Type {
	case StorageTypeFile:
		if cfg.Storage.GroupID == "" || cfg.Storage.FileName == "" {
			return fmt.Errorf("%w: file storage needs group id and file name", ErrInvalidStorageConfigs)
		}
	case StorageTypeMemory:
	default:
		return fmt.Errorf("%w: unknown storage type %q", ErrInvalidStorageConfigs, cfg.Storage.Type)
	}

	switch cfg.Keys.Backend {
	case KeyBackendKeyring, KeyBackendMemory:
	case KeyBackendFile:
		if cfg.Keys.FileDir == "" {
			return fmt.Errorf("%w: file backend needs a directory", ErrInvalidKeyConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown key backend %q", ErrInvalidKeyConfigs, cfg.Keys.Backend)
	}
	if cfg.Keys.KeyName == "" {
		return fmt.Errorf("%w: empty key name", ErrInvalidKeyConfigs)
	}
	if cfg.Keys.ServiceName == "" {
		cfg.Keys.ServiceName = cfg.Storage.GroupID
	}

	switch cfg.Crypto.Algorithm {
	case AlgorithmXChaCha20Poly1305, AlgorithmAES256GCM:
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidCryptoConfigs, cfg.Crypto.Algorithm)
	}

	if cfg.Sync.Interval < 0 || cfg.Sync.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidSyncConfigs)
	}
	if cfg.Sync.SourceURL != "" && cfg.Sync.SourceFile != "" {
		return fmt.Errorf("%w: source url and source file are mutually exclusive", ErrInvalidSyncConfigs)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

// KeySize is the length in bytes of generated keys.
const KeySize = 32

// New returns the repository selected by cfg.Backend.
func New(cfg config.Keys, log *logger.Logger) (SharedKeyRepository, error) {
	switch cfg.Backend {
	case config.KeyBackendKeyring, "":
		return NewKeyringRepository(cfg, log)
	case config.KeyBackendFile:
		return NewFileRepository(cfg.FileDir, log)
	case config.KeyBackendMemory:
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func generateKeyData() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate key data: %w", err)
	}
	return key, nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKeyName, name)
	}
	return nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/99designs/keyring"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

type keyringRepository struct {
	ring   keyring.Keyring
	logger *logger.Logger
}

// NewKeyringRepository opens the OS credential store under
// cfg.ServiceName. When cfg.FileDir is set the encrypted-file backend is
// allowed as a fallback, unlocked with cfg.FilePassword.
func NewKeyringRepository(cfg config.Keys, log *logger.Logger) (SharedKeyRepository, error) {
	ring, err := keyring.Open(keyringConfig(cfg))
	if err != nil {
		log.Err(err).
			Str("func", "keystore.NewKeyringRepository").
			Str("service", cfg.ServiceName).
			Msg("failed to open credential store")
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	return newKeyringRepository(ring, log), nil
}

func newKeyringRepository(ring keyring.Keyring, log *logger.Logger) *keyringRepository {
	return &keyringRepository{ring: ring, logger: log}
}

func keyringConfig(cfg config.Keys) keyring.Config {
	kc := keyring.Config{
		ServiceName:                    cfg.ServiceName,
		KeychainTrustApplication:       true,
		KeychainSynchronizable:         false,
		KeychainAccessibleWhenUnlocked: true,
		LibSecretCollectionName:        cfg.ServiceName,
		KWalletAppID:                   cfg.ServiceName,
		KWalletFolder:                  cfg.ServiceName,
		WinCredPrefix:                  cfg.ServiceName,
	}

	if cfg.FileDir != "" {
		kc.AllowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
		kc.FileDir = cfg.FileDir
		kc.FilePasswordFunc = keyring.FixedStringPrompt(cfg.FilePassword)
	}

	return kc
}

func (k *keyringRepository) GetKey(_ context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	item, err := k.ring.Get(name)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		k.logger.Err(err).Str("func", "keyringRepository.GetKey").Str("name", name).Msg("failed to read key")
		return nil, fmt.Errorf("read key %s: %w", name, err)
	}

	return item.Data, nil
}

func (k *keyringRepository) SetKey(_ context.Context, name string, key []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	err := k.ring.Set(keyring.Item{
		Key:         name,
		Data:        clone(key),
		Label:       name,
		Description: "shared bridge item key",
	})
	if err != nil {
		k.logger.Err(err).Str("func", "keyringRepository.SetKey").Str("name", name).Msg("failed to store key")
		return fmt.Errorf("write key %s: %w", name, err)
	}

	return nil
}

func (k *keyringRepository) DeleteKey(_ context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	err := k.ring.Remove(name)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) && !errors.Is(err, fs.ErrNotExist) {
		k.logger.Err(err).Str("func", "keyringRepository.DeleteKey").Str("name", name).Msg("failed to delete key")
		return fmt.Errorf("delete key %s: %w", name, err)
	}
	return nil
}

func (k *keyringRepository) GenerateKeyData() ([]byte, error) {
	return generateKeyData()
}

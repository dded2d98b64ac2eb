// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
)

// KeySize is the only accepted key length.
const KeySize = 32

const (
	envelopeParts = 4
	tagSize       = 16
)

var encoding = base64.RawStdEncoding

// newAEAD returns the cipher for algorithm keyed with key.
func newAEAD(algorithm string, key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidKey, len(key))
	}

	switch algorithm {
	case config.AlgorithmXChaCha20Poly1305:
		return chacha20poly1305.NewX(key)
	case config.AlgorithmAES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

// seal encrypts plaintext with a fresh random nonce and returns
// "<algorithm>:<nonce>:<ciphertext>:<tag>", each binary part in unpadded
// base64. additionalData is authenticated but not stored.
func seal(algorithm string, key []byte, plaintext, additionalData string) (string, error) {
	aead, err := newAEAD(algorithm, key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), []byte(additionalData))
	ct, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return strings.Join([]string{
		algorithm,
		encoding.EncodeToString(nonce),
		encoding.EncodeToString(ct),
		encoding.EncodeToString(tag),
	}, ":"), nil
}

// open authenticates and decrypts an envelope produced by seal. The
// algorithm recorded in the envelope is used, whatever the current default.
func open(key []byte, envelope, additionalData string) (string, error) {
	parts := strings.Split(envelope, ":")
	if len(parts) != envelopeParts {
		return "", ErrMalformedCiphertext
	}

	aead, err := newAEAD(parts[0], key)
	if err != nil {
		return "", err
	}

	nonce, err := encoding.DecodeString(parts[1])
	if err != nil || len(nonce) != aead.NonceSize() {
		return "", fmt.Errorf("%w: nonce", ErrMalformedCiphertext)
	}
	ct, err := encoding.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: payload", ErrMalformedCiphertext)
	}
	tag, err := encoding.DecodeString(parts[3])
	if err != nil || len(tag) != tagSize {
		return "", fmt.Errorf("%w: tag", ErrMalformedCiphertext)
	}

	plaintext, err := aead.Open(nil, nonce, append(ct, tag...), []byte(additionalData))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return string(plaintext), nil
}

package crypto

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/internal/keystore"
)

var (
	// ErrKeyNotFound is returned when the shared key repository holds no key.
	ErrKeyNotFound = keystore.ErrKeyNotFound

	// ErrDecryption is returned when ciphertext cannot be authenticated under
	// the available key, e.g. after the key was rotated.
	ErrDecryption = errors.New("decryption failed")

	// ErrUnsupportedAlgorithm is returned for ciphertext naming an unknown
	// algorithm.
	ErrUnsupportedAlgorithm = fmt.Errorf("%w: unsupported algorithm", ErrDecryption)

	// ErrMalformedCiphertext is returned for values that are not in the
	// ciphertext format.
	ErrMalformedCiphertext = fmt.Errorf("%w: malformed ciphertext", ErrDecryption)

	// ErrInvalidKey is returned when the stored key has the wrong length.
	ErrInvalidKey = errors.New("invalid shared key")
)

package keystore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

type fileRepository struct {
	dir    string
	logger *logger.Logger
}

// NewFileRepository stores each key as a 0600 file named after the key in
// dir, creating dir if needed.
func NewFileRepository(dir string, log *logger.Logger) (SharedKeyRepository, error) {
	if dir == "" {
		return nil, errors.New("file key repository: empty directory")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Err(err).Str("func", "keystore.NewFileRepository").Str("dir", dir).Msg("key directory is not reachable")
		return nil, fmt.Errorf("create key directory: %w", err)
	}

	return &fileRepository{dir: dir, logger: log}, nil
}

func (f *fileRepository) GetKey(_ context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	key, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		f.logger.Err(err).Str("func", "fileRepository.GetKey").Str("name", name).Msg("failed to read key file")
		return nil, fmt.Errorf("read key %s: %w", name, err)
	}

	return key, nil
}

// SetKey writes the key to a temporary file in the same directory, syncs it
// and renames it over the target.
func (f *fileRepository) SetKey(_ context.Context, name string, key []byte) (err error) {
	if err = validateName(name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, "."+name+".tmp-*")
	if err != nil {
		f.logger.Err(err).Str("func", "fileRepository.SetKey").Str("name", name).Msg("failed to create temporary key file")
		return fmt.Errorf("write key %s: %w", name, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write key %s: %w", name, err)
	}
	if _, err = tmp.Write(key); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write key %s: %w", name, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync key %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write key %s: %w", name, err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(f.dir, name)); err != nil {
		f.logger.Err(err).Str("func", "fileRepository.SetKey").Str("name", name).Msg("failed to move key file into place")
		return fmt.Errorf("write key %s: %w", name, err)
	}

	return nil
}

func (f *fileRepository) DeleteKey(_ context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(f.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		f.logger.Err(err).Str("func", "fileRepository.DeleteKey").Str("name", name).Msg("failed to remove key file")
		return fmt.Errorf("delete key %s: %w", name, err)
	}
	return nil
}

func (f *fileRepository) GenerateKeyData() ([]byte, error) {
	return generateKeyData()
}

package keystore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

const testKeyName = "com.example.passbridge.sharedKey"

func repositories(t *testing.T) map[string]SharedKeyRepository {
	t.Helper()

	fileRepo, err := NewFileRepository(filepath.Join(t.TempDir(), "keys"), logger.Nop())
	require.NoError(t, err)

	ring, err := keyring.Open(keyring.Config{
		ServiceName:      "group.test",
		AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
		FileDir:          t.TempDir(),
		FilePasswordFunc: keyring.FixedStringPrompt("test-password"),
	})
	require.NoError(t, err)

	return map[string]SharedKeyRepository{
		"memory":        NewMemoryRepository(),
		"file":          fileRepo,
		"keyring file":  newKeyringRepository(ring, logger.Nop()),
		"keyring array": newKeyringRepository(keyring.NewArrayKeyring(nil), logger.Nop()),
	}
}

func TestSharedKeyRepository_Lifecycle(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := repo.GetKey(ctx, testKeyName)
			require.ErrorIs(t, err, ErrKeyNotFound)

			key, err := repo.GenerateKeyData()
			require.NoError(t, err)
			require.Len(t, key, KeySize)

			require.NoError(t, repo.SetKey(ctx, testKeyName, key))

			got, err := repo.GetKey(ctx, testKeyName)
			require.NoError(t, err)
			assert.Equal(t, key, got)

			rotated, err := repo.GenerateKeyData()
			require.NoError(t, err)
			require.NoError(t, repo.SetKey(ctx, testKeyName, rotated))

			got, err = repo.GetKey(ctx, testKeyName)
			require.NoError(t, err)
			assert.Equal(t, rotated, got)

			require.NoError(t, repo.DeleteKey(ctx, testKeyName))
			_, err = repo.GetKey(ctx, testKeyName)
			require.ErrorIs(t, err, ErrKeyNotFound)

			// deleting again is a no-op
			require.NoError(t, repo.DeleteKey(ctx, testKeyName))
		})
	}
}

func TestSharedKeyRepository_InvalidNames(t *testing.T) {
	names := []string{"", ".", "..", "../escape", "a/b", `a\b`}

	for repoName, repo := range repositories(t) {
		t.Run(repoName, func(t *testing.T) {
			ctx := context.Background()
			for _, name := range names {
				_, err := repo.GetKey(ctx, name)
				assert.ErrorIs(t, err, ErrInvalidKeyName, name)
				assert.ErrorIs(t, repo.SetKey(ctx, name, []byte("k")), ErrInvalidKeyName, name)
				assert.ErrorIs(t, repo.DeleteKey(ctx, name), ErrInvalidKeyName, name)
			}
		})
	}
}

func TestGenerateKeyData_Fresh(t *testing.T) {
	a, err := generateKeyData()
	require.NoError(t, err)
	b, err := generateKeyData()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	key := []byte{1, 2, 3}
	require.NoError(t, repo.SetKey(ctx, testKeyName, key))
	key[0] = 9

	got, err := repo.GetKey(ctx, testKeyName)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestFileRepository_AtomicWrite(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "keys")
	repo, err := NewFileRepository(dir, logger.Nop())
	require.NoError(t, err)

	first := make([]byte, KeySize)
	second := make([]byte, KeySize)
	for i := range second {
		second[i] = 0xff
	}
	require.NoError(t, repo.SetKey(ctx, testKeyName, first))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			key := first
			if i%2 == 0 {
				key = second
			}
			_ = repo.SetKey(ctx, testKeyName, key)
		}
	}()

	for range 200 {
		got, err := repo.GetKey(ctx, testKeyName)
		require.NoError(t, err)
		require.True(t, assert.ObjectsAreEqual(first, got) || assert.ObjectsAreEqual(second, got),
			"observed partially written key: %x", got)
	}
	close(stop)
	wg.Wait()

	info, err := os.Stat(filepath.Join(dir, testKeyName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

// Two processes racing to create the first key: whichever write lands last
// is the key, and it is always a complete one.
func TestSharedKeyRepository_ConcurrentFirstGeneration(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "keys")

	primary, err := NewFileRepository(dir, logger.Nop())
	require.NoError(t, err)
	companion, err := NewFileRepository(dir, logger.Nop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	generated := make([][]byte, 2)
	for i, repo := range []SharedKeyRepository{primary, companion} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, err := repo.GenerateKeyData()
			if err != nil {
				return
			}
			generated[i] = key
			_ = repo.SetKey(ctx, testKeyName, key)
		}()
	}
	wg.Wait()

	got, err := primary.GetKey(ctx, testKeyName)
	require.NoError(t, err)
	assert.Contains(t, generated, got)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Keys
		wantErr error
	}{
		{name: "memory", cfg: config.Keys{Backend: config.KeyBackendMemory}},
		{name: "file", cfg: config.Keys{Backend: config.KeyBackendFile, FileDir: t.TempDir()}},
		{
			name: "keyring with file fallback",
			cfg: config.Keys{
				Backend:      config.KeyBackendKeyring,
				ServiceName:  "group.test",
				FileDir:      t.TempDir(),
				FilePassword: "test-password",
			},
		},
		{name: "unknown", cfg: config.Keys{Backend: "vault"}, wantErr: ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := New(tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, repo)
		})
	}
}

func TestKeyringConfig(t *testing.T) {
	kc := keyringConfig(config.Keys{ServiceName: "group.test"})
	assert.Equal(t, "group.test", kc.ServiceName)
	assert.Nil(t, kc.AllowedBackends)

	kc = keyringConfig(config.Keys{ServiceName: "group.test", FileDir: "/tmp/keys", FilePassword: "pw"})
	assert.Contains(t, kc.AllowedBackends, keyring.FileBackend)
	assert.Equal(t, "/tmp/keys", kc.FileDir)

	pw, err := kc.FilePasswordFunc("prompt")
	require.NoError(t, err)
	assert.Equal(t, "pw", pw)
}

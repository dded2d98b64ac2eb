// Package keystore holds the shared symmetric key that the primary and the
// companion application both use to protect bridge items.
//
// A key is stored under a well-known name inside a namespace both
// applications can reach. Three backends are available:
//   - keyring: the OS credential store (Keychain, Secret Service, WinCred)
//     or its encrypted-file fallback, via github.com/99designs/keyring;
//   - file: one file per key in a shared directory;
//   - memory: process-local, for tests.
//
// Writes are atomic: a reader never sees partially written key bytes. The
// package provides no locking; two processes generating the first key at
// the same time resolve as last writer wins.
package keystore

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the bridge process runtime.
//
// It makes sure the shared key exists, pulls the user's data from the
// configured sync source, prints the bridge items the companion can see and
// optionally keeps syncing and following the item stream until the process
// is stopped.
package client

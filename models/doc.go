// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the domain values persisted by the local entity
// store: vault items, folders, collections, organizations, policies,
// settings and the cross-app bridge item.
//
// Every model is encoded as JSON into the record payload. Optional fields
// carry omitempty so that older payloads decode into newer models and vice
// versa; there is no in-band schema version.
package models

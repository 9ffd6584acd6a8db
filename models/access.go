// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccessGrant records a successfully entered access code.
//
// The code itself is never kept: Fingerprint is a one-way digest of the
// submitted "<format>-<value>" string, enough to correlate log lines without
// exposing the secret.
type AccessGrant struct {
	// SessionID identifies the editing session that produced the grant.
	SessionID string `json:"session_id"`

	// Format is the access-code format identifier (e.g. "MDA").
	Format string `json:"format"`

	// Fingerprint is the hex encoded BLAKE2b-256 digest of the code.
	Fingerprint string `json:"fingerprint"`

	// SubmittedAt is the submission time in UTC.
	SubmittedAt time.Time `json:"submitted_at"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func newTestAccessService(t *testing.T, opts AccessOptions) *accessService {
	t.Helper()
	svc, err := NewAccessService(accesscode.NewDefaultRegistry(), opts, logger.Nop())
	require.NoError(t, err)
	return svc.(*accessService)
}

func typeCode(e *accesscode.Editor, chars string) {
	for _, r := range chars {
		e.ApplyEditEvent(e.Display() + string(r))
	}
}

// ── NewAccessService ────────────────────────────────────────────────────────

func TestNewAccessService_DefaultsToRBM(t *testing.T) {
	svc := newTestAccessService(t, AccessOptions{})

	session, err := svc.Open(context.Background())

	require.NoError(t, err)
	assert.Equal(t, accesscode.FormatRBM, session.Editor.Format().ID)
	assert.Equal(t, accesscode.Masked, session.Editor.DisplayMode())
	assert.Empty(t, session.Editor.Value())
}

func TestNewAccessService_UnknownDefaultFormat(t *testing.T) {
	svc, err := NewAccessService(accesscode.NewDefaultRegistry(), AccessOptions{DefaultFormat: "XYZ"}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, accesscode.ErrUnknownFormat)
}

// ── Open ────────────────────────────────────────────────────────────────────

func TestAccessService_Open_UniqueSessions(t *testing.T) {
	svc := newTestAccessService(t, AccessOptions{DefaultFormat: accesscode.FormatMDA})

	s1, err := svc.Open(context.Background())
	require.NoError(t, err)
	s2, err := svc.Open(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID, s2.ID)
	assert.NotSame(t, s1.Editor, s2.Editor)
	assert.Equal(t, accesscode.FormatMDA, s1.Editor.Format().ID)
}

func TestAccessService_Open_CaseFolding(t *testing.T) {
	svc := newTestAccessService(t, AccessOptions{DefaultFormat: accesscode.FormatMDA, CaseFolding: true})

	session, err := svc.Open(context.Background())
	require.NoError(t, err)
	typeCode(session.Editor, "abc1234")

	assert.True(t, session.Editor.IsComplete())
}

// ── Submit ──────────────────────────────────────────────────────────────────

func TestAccessService_Submit_Success(t *testing.T) {
	svc := newTestAccessService(t, AccessOptions{DefaultFormat: accesscode.FormatMDA})
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	session, err := svc.Open(context.Background())
	require.NoError(t, err)
	typeCode(session.Editor, "ABC1234")

	grant, err := svc.Submit(context.Background(), session)

	require.NoError(t, err)
	sum := blake2b.Sum256([]byte("MDA-ABC1234"))
	assert.Equal(t, session.ID, grant.SessionID)
	assert.Equal(t, accesscode.FormatMDA, grant.Format)
	assert.Equal(t, hex.EncodeToString(sum[:]), grant.Fingerprint)
	assert.Equal(t, fixed, grant.SubmittedAt)

	assert.True(t, session.Closed())
	assert.Empty(t, session.Editor.Value())
}

func TestAccessService_Submit_Incomplete(t *testing.T) {
	svc := newTestAccessService(t, AccessOptions{DefaultFormat: accesscode.FormatMDA})
	session, err := svc.Open(context.Background())
	require.NoError(t, err)
	typeCode(session.Editor, "ABC12")

	_, err = svc.Submit(context.Background(), session)

	assert.ErrorIs(t, err, ErrIncompleteCode)
	assert.Contains(t, err.Error(), "2 characters missing")
	assert.False(t, session.Closed())
	assert.Equal(t, "ABC12", session.Editor.Value())
}

func TestAccessService_Submit_NoSession(t *testing.T) {
	svc := newTestAccessService(t, AccessOptions{})

	_, err := svc.Submit(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAccessService_Submit_Closed(t *testing.T) {
	svc := newTestAccessService(t, AccessOptions{})
	session, err := svc.Open(context.Background())
	require.NoError(t, err)
	svc.Close(context.Background(), session)

	_, err = svc.Submit(context.Background(), session)

	assert.ErrorIs(t, err, ErrSessionClosed)
}

// ── Close ───────────────────────────────────────────────────────────────────

func TestAccessService_Close_Idempotent(t *testing.T) {
	svc := newTestAccessService(t, AccessOptions{})
	session, err := svc.Open(context.Background())
	require.NoError(t, err)
	typeCode(session.Editor, "ABC12")
	session.Editor.ToggleDisplayMode()

	svc.Close(context.Background(), session)
	svc.Close(context.Background(), session)
	svc.Close(context.Background(), nil)

	assert.True(t, session.Closed())
	assert.Empty(t, session.Editor.Value())
	assert.Equal(t, accesscode.Masked, session.Editor.DisplayMode())
}

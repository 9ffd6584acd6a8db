// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// AccessSession is one run of the secure-entry flow. The editor is created
// when the session opens and cleared when it closes; it must only be touched
// by the goroutine that owns the session.
type AccessSession struct {
	ID       string
	Editor   *accesscode.Editor
	OpenedAt time.Time

	closed bool
}

// Closed reports whether the session has been closed.
func (s *AccessSession) Closed() bool {
	return s.closed
}

// AccessOptions configures editors created by [NewAccessService].
type AccessOptions struct {
	// DefaultFormat is the format selected when a session opens.
	DefaultFormat string
	// CaseFolding enables lower-case entry.
	CaseFolding bool
}

type accessService struct {
	formats accesscode.FormatLookup
	opts    AccessOptions
	now     func() time.Time

	logger *logger.Logger
}

// NewAccessService returns an [AccessService] creating editors over formats.
// The default format must be resolvable.
func NewAccessService(formats accesscode.FormatLookup, opts AccessOptions, logger *logger.Logger) (AccessService, error) {
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = accesscode.DefaultFormat
	}
	if _, err := formats.Lookup(opts.DefaultFormat); err != nil {
		return nil, fmt.Errorf("error resolving default access code format: %w", err)
	}

	return &accessService{
		formats: formats,
		opts:    opts,
		now:     time.Now,
		logger:  logger,
	}, nil
}

func (s *accessService) Open(ctx context.Context) (*AccessSession, error) {
	var editorOpts []accesscode.Option
	if s.opts.CaseFolding {
		editorOpts = append(editorOpts, accesscode.WithCaseFolding())
	}

	editor, err := accesscode.NewEditor(s.formats, s.opts.DefaultFormat, editorOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating access code editor: %w", err)
	}

	session := &AccessSession{
		ID:       uuid.NewString(),
		Editor:   editor,
		OpenedAt: s.now().UTC(),
	}

	s.logger.WithSession(session.ID).Debug().
		Str("format", editor.Format().ID).
		Msg("access session opened")

	return session, nil
}

func (s *accessService) Submit(ctx context.Context, session *AccessSession) (models.AccessGrant, error) {
	if session == nil || session.Editor == nil {
		return models.AccessGrant{}, ErrNoSession
	}
	if session.closed {
		return models.AccessGrant{}, ErrSessionClosed
	}

	code, ok := session.Editor.Code()
	if !ok {
		return models.AccessGrant{}, fmt.Errorf("%w: %d characters missing",
			ErrIncompleteCode, session.Editor.Remaining())
	}

	grant := models.AccessGrant{
		SessionID:   session.ID,
		Format:      session.Editor.Format().ID,
		Fingerprint: fingerprint(code),
		SubmittedAt: s.now().UTC(),
	}

	s.logger.WithSession(session.ID).Info().
		Str("format", grant.Format).
		Str("fingerprint", grant.Fingerprint).
		Msg("access code submitted")

	s.Close(ctx, session)
	return grant, nil
}

func (s *accessService) Close(_ context.Context, session *AccessSession) {
	if session == nil || session.closed {
		return
	}
	if session.Editor != nil {
		session.Editor.Clear()
	}
	session.closed = true

	s.logger.WithSession(session.ID).Debug().Msg("access session closed")
}

func fingerprint(code string) string {
	sum := blake2b.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidBillingCycle   = errors.New("invalid billing cycle")
	ErrIncompleteCode        = errors.New("access code is incomplete")
	ErrNoSession             = errors.New("no access session")
	ErrSessionClosed         = errors.New("access session is closed")
)

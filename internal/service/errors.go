package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoUserID            = errors.New("no user ID was given")
	ErrNoSyncSource        = errors.New("no sync source configured")
)

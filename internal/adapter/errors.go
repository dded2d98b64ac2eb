package adapter

import "errors"

var (
	ErrEmptyUserID         = errors.New("empty user id")
	ErrInvalidAddress      = errors.New("invalid sync source address")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrDecodingResponse    = errors.New("error decoding sync response")
	ErrReadingSource       = errors.New("error reading sync source")
)

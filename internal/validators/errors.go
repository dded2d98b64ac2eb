package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidItemID   = errors.New("invalid item id")
	ErrEmptyName       = errors.New("item name is required")
	ErrDuplicateItemID = errors.New("duplicate item id in batch")
)

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidDeckID    = errors.New("invalid deck ID")
	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrContentTooLong   = errors.New("content is too long")
	ErrInvalidCardCount = errors.New("card count cannot be negative")
	ErrInvalidTimestamp = errors.New("timestamp is required")
)

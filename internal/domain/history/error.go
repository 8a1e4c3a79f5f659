package history

import "errors"

var (
	ErrNotFound    = errors.New("qr code not found")
	ErrInvalidSlot = errors.New("invalid slot name")
)

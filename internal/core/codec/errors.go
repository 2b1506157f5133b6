package codec

import "errors"

var (
	ErrBadHeader      = errors.New("codec: bad save header")
	ErrStringTooLong  = errors.New("codec: string exceeds limit")
	ErrUnregisteredID = errors.New("codec: extension id has no registered kind")
)

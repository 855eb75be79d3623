package token

import "errors"

var (
	ErrQuote = errors.New("malformed quoted string")
)

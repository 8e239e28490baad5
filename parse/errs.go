package parse

import "errors"

// ErrContent reports payload bytes that cannot be decoded as the declared
// media type.
var ErrContent = errors.New("content error")

package logosvm

import "errors"

var ErrMaxDepth = errors.New("max chain depth exceeded")

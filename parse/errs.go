package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
	ErrNesting  = fmt.Errorf("%w: nesting too deep", ErrParse)
)

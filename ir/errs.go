package ir

import "errors"

var (
	ErrNotContainer = errors.New("not a container")
	ErrAttached     = errors.New("node already attached")
	ErrCycle        = errors.New("node would become its own descendant")
	ErrRange        = errors.New("index out of range")
)

package jsondom

import "errors"

var (
	// ErrWrongType is wrapped by the panic raised when an accessor or
	// mutator is used on a value of the wrong kind.
	ErrWrongType = errors.New("wrong value type")
	// ErrNotEmpty is wrapped by the panic raised when Parse is called on a
	// handle that already holds a value.
	ErrNotEmpty = errors.New("handle not empty")
	// ErrAttached is wrapped by the panic raised when a value that belongs
	// to another tree is attached to a container.
	ErrAttached = errors.New("value is attached elsewhere")
	// ErrBadFormatSpec is wrapped by the panic raised by Sprintf on a
	// malformed format.
	ErrBadFormatSpec = errors.New("bad format spec")
	// ErrEmpty is returned by operations that need a value but got an empty
	// handle.
	ErrEmpty = errors.New("empty handle")
)

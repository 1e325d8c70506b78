package attribute

import "github.com/microbus-io/errors"

var (
	// ErrInvalidSubject is returned when the subject is neither a known class
	// name nor an object.
	ErrInvalidSubject = errors.New("invalid subject")

	// ErrAttributeNotFound is returned when no attribute of the given name
	// exists anywhere in the subject's embedding chain.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrInvalidStatic is returned by Register when a static attribute is not
	// a non-nil pointer.
	ErrInvalidStatic = errors.New("static attribute must be a non-nil pointer")
)

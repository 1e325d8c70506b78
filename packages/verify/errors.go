package verify

import "github.com/microbus-io/errors"

var (
	// ErrMissingModifier is reported when an assertion is called before a
	// conjunction set the modifier.
	ErrMissingModifier = errors.New(`assertions must be prefaced by a condition method, such as Is(), Will(), DoesNot() or IsNot()`)

	// ErrUnknownMethod is returned for a conjunction name that is in none of
	// the vocabulary lists.
	ErrUnknownMethod = errors.New("unknown method")
)

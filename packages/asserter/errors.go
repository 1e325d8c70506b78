package asserter

import "github.com/microbus-io/errors"

var (
	// ErrUnsupportedAssertion is reported when an assertion name is not
	// registered with the asserter.
	ErrUnsupportedAssertion = errors.New("unsupported assertion")

	// ErrOperandCount is reported when an assertion receives the wrong number
	// of operands.
	ErrOperandCount = errors.New("wrong number of operands")
)

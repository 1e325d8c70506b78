package verify

import (
	"reflect"

	"github.com/abdul-hamid-achik/verify/packages/asserter"
	"github.com/abdul-hamid-achik/verify/packages/attribute"
)

// Verifier is a fluent assertion on a single value, or on a named attribute
// of it.
type Verifier struct {
	fluent[*Verifier]
	state

	attributeName  string
	dataType       bool
	floatDelta     float64
	ignoreOrder    bool
	objectIdentity bool
}

// That starts an assertion chain on actual.
func That(t TestingT, actual any, opts ...Option) *Verifier {
	v := &Verifier{
		state:          newState(t, actual, opts),
		objectIdentity: true,
	}
	v.fluent = fluent[*Verifier]{st: &v.state, self: v}
	return v
}

// AttributeNamed makes the following assertions check the named attribute
// of the subject instead of the subject itself. The subject must be an
// object or a registered class name; see package attribute.
func (v *Verifier) AttributeNamed(name string) *Verifier {
	v.attributeName = name
	return v
}

// WithCase makes string comparisons case sensitive. This is the default.
func (v *Verifier) WithCase() *Verifier {
	v.ignoreCase = false
	return v
}

// WithoutCase makes string comparisons case insensitive.
func (v *Verifier) WithoutCase() *Verifier {
	v.ignoreCase = true
	return v
}

// WithOrder makes collection equality depend on element order. This is the
// default.
func (v *Verifier) WithOrder() *Verifier {
	v.ignoreOrder = false
	return v
}

// WithoutOrder ignores element order when comparing collections.
func (v *Verifier) WithoutOrder() *Verifier {
	v.ignoreOrder = true
	return v
}

// WithType compares both type and value.
func (v *Verifier) WithType() *Verifier {
	v.dataType = true
	return v
}

// WithoutType compares values after converting to a common type. This is
// the default.
func (v *Verifier) WithoutType() *Verifier {
	v.dataType = false
	return v
}

// WithIdentity compares pointers inside collections by identity. This is
// the default.
func (v *Verifier) WithIdentity() *Verifier {
	v.objectIdentity = true
	return v
}

// WithoutIdentity compares pointers inside collections by value.
func (v *Verifier) WithoutIdentity() *Verifier {
	v.objectIdentity = false
	return v
}

// Within sets the tolerance for numeric equality.
func (v *Verifier) Within(delta float64) *Verifier {
	v.floatDelta = delta
	return v
}

// actualValue returns the subject, or its named attribute.
func (v *Verifier) actualValue() (any, bool) {
	v.t.Helper()
	if v.attributeName == "" {
		return v.actual, true
	}
	value, err := attribute.Resolve(v.actual, v.attributeName)
	if err != nil {
		v.fail(err)
		return nil, false
	}
	return value, true
}

// check runs the assertion pair with operands followed by the actual value.
func (v *Verifier) check(method, positive, negative string, operands ...any) *Verifier {
	v.t.Helper()
	if !v.ready(method) {
		return v
	}
	actual, ok := v.actualValue()
	if !ok {
		return v
	}
	v.run(method, v.choose(positive, negative), append(operands, actual)...)
	return v
}

func (v *Verifier) kind(method, kind string) *Verifier {
	v.t.Helper()
	return v.check(method, "Kind", "NotKind", kind)
}

func isString(value any) bool {
	return asserter.IsKind(value, "string")
}

func isNumber(value any) bool {
	return asserter.IsKind(value, "int") || asserter.IsKind(value, "float")
}

func isPointer(value any) bool {
	return reflect.ValueOf(value).Kind() == reflect.Pointer
}

package verify

import (
	"sort"

	"github.com/abdul-hamid-achik/verify/packages/asserter"
)

var methods = []string{
	"Array", "Attribute", "Bool", "Callable", "Contain", "ContainOnly", "Count",
	"Empty", "EndWith", "EqualTo", "EqualToFile", "EqualToJSONFile",
	"EqualToJSONString", "EqualToYAMLString", "False", "Finite", "Float",
	"GreaterOrEqualTo", "GreaterThan", "Implement", "Infinite", "InstanceOf",
	"Int", "Iterable", "JSON", "Key", "LessOrEqualTo", "LessThan", "Map",
	"MatchFormat", "MatchFormatFile", "MatchRegExp", "MatchSchema", "NaN",
	"Nil", "Numeric", "Object", "SameAs", "SameSizeAs", "Scalar", "StartWith",
	"StaticAttribute", "String", "StringLength", "Subset", "True", "UUID", "Zero",
}

// Methods returns the names of the Verifier assertions in sorted order.
func Methods() []string {
	out := append([]string(nil), methods...)
	sort.Strings(out)
	return out
}

// Array asserts the subject is or is not a slice or array.
func (v *Verifier) Array() *Verifier {
	v.t.Helper()
	return v.kind("Array", "array")
}

// Attribute asserts the subject does or does not have the named attribute.
// A string subject is looked up as a registered class name.
func (v *Verifier) Attribute(name string) *Verifier {
	v.t.Helper()
	return v.check("Attribute", "HasAttribute", "NotHasAttribute", name)
}

// Bool asserts the subject is or is not a bool.
func (v *Verifier) Bool() *Verifier {
	v.t.Helper()
	return v.kind("Bool", "bool")
}

// Callable asserts the subject is or is not a non-nil func.
func (v *Verifier) Callable() *Verifier {
	v.t.Helper()
	return v.kind("Callable", "callable")
}

// Contain asserts the subject does or does not contain needle.
//
// Strings are searched for a substring, honouring WithoutCase. Collection
// elements are matched by converted value unless WithType is set; with
// WithType, pointers are matched by identity unless WithoutIdentity is also
// set.
func (v *Verifier) Contain(needle any) *Verifier {
	v.t.Helper()
	if !v.ready("Contain") {
		return v
	}
	actual, ok := v.actualValue()
	if !ok {
		return v
	}
	var positive, negative string
	switch {
	case isString(actual) && v.ignoreCase:
		positive, negative = "ContainsFold", "NotContainsFold"
	case isString(actual):
		positive, negative = "Contains", "NotContains"
	case !v.dataType || (isPointer(needle) && !v.objectIdentity):
		positive, negative = "ContainsEqualValues", "NotContainsEqualValues"
	case isPointer(needle):
		positive, negative = "ContainsSame", "NotContainsSame"
	default:
		positive, negative = "Contains", "NotContains"
	}
	v.run("Contain", v.choose(positive, negative), needle, actual)
	return v
}

// ContainOnly asserts every element of the subject is, or not every element
// is, of the named type ("*pkg.Type", "string") or kind group ("int",
// "object"...).
func (v *Verifier) ContainOnly(typeName string) *Verifier {
	v.t.Helper()
	return v.check("ContainOnly", "ContainsOnly", "NotContainsOnly", typeName)
}

// Count asserts the subject does or does not have n elements.
func (v *Verifier) Count(n int) *Verifier {
	v.t.Helper()
	return v.check("Count", "Len", "NotLen", n)
}

// Empty asserts the subject is or is not empty.
func (v *Verifier) Empty() *Verifier {
	v.t.Helper()
	return v.check("Empty", "Empty", "NotEmpty")
}

// EndWith asserts the subject does or does not end with suffix.
func (v *Verifier) EndWith(suffix string) *Verifier {
	v.t.Helper()
	return v.check("EndWith", "HasSuffix", "NotHasSuffix", suffix)
}

// EqualTo asserts the subject does or does not equal expected.
//
// Within makes numeric comparisons tolerant, WithoutOrder compares
// collections as multisets, WithoutCase compares strings ignoring case and
// WithType requires identical types.
func (v *Verifier) EqualTo(expected any) *Verifier {
	v.t.Helper()
	if !v.ready("EqualTo") {
		return v
	}
	actual, ok := v.actualValue()
	if !ok {
		return v
	}
	switch {
	case v.floatDelta != 0 && isNumber(actual):
		v.run("EqualTo", v.choose("InDelta", "NotInDelta"), expected, actual, v.floatDelta)
	case v.ignoreOrder && asserter.IsKind(actual, "array"):
		v.run("EqualTo", v.choose("ElementsMatch", "NotElementsMatch"), expected, actual)
	case v.ignoreCase && isString(actual):
		v.run("EqualTo", v.choose("EqualFold", "NotEqualFold"), expected, actual)
	case v.dataType:
		v.run("EqualTo", v.choose("Equal", "NotEqual"), expected, actual)
	default:
		v.run("EqualTo", v.choose("EqualValues", "NotEqualValues"), expected, actual)
	}
	return v
}

// EqualToFile asserts the subject does or does not equal the contents of
// file, honouring WithoutCase.
func (v *Verifier) EqualToFile(file string) *Verifier {
	v.t.Helper()
	if v.ignoreCase {
		return v.check("EqualToFile", "StringEqualsFileFold", "NotStringEqualsFileFold", file)
	}
	return v.check("EqualToFile", "StringEqualsFile", "NotStringEqualsFile", file)
}

// EqualToJSONFile asserts the subject is or is not JSON equivalent to the
// contents of file.
func (v *Verifier) EqualToJSONFile(file string) *Verifier {
	v.t.Helper()
	return v.check("EqualToJSONFile", "JSONEqFile", "NotJSONEqFile", file)
}

// EqualToJSONString asserts the subject is or is not JSON equivalent to
// expected.
func (v *Verifier) EqualToJSONString(expected string) *Verifier {
	v.t.Helper()
	return v.check("EqualToJSONString", "JSONEq", "NotJSONEq", expected)
}

// EqualToYAMLString asserts the subject is or is not YAML equivalent to
// expected.
func (v *Verifier) EqualToYAMLString(expected string) *Verifier {
	v.t.Helper()
	return v.check("EqualToYAMLString", "YAMLEq", "NotYAMLEq", expected)
}

// False asserts the subject is or is not false.
func (v *Verifier) False() *Verifier {
	v.t.Helper()
	return v.check("False", "False", "NotFalse")
}

// Finite asserts the subject is or is not a finite number.
func (v *Verifier) Finite() *Verifier {
	v.t.Helper()
	return v.check("Finite", "Finite", "NotFinite")
}

// Float asserts the subject is or is not a float.
func (v *Verifier) Float() *Verifier {
	v.t.Helper()
	return v.kind("Float", "float")
}

// GreaterOrEqualTo asserts the subject is or is not greater than or equal
// to expected.
func (v *Verifier) GreaterOrEqualTo(expected any) *Verifier {
	v.t.Helper()
	return v.check("GreaterOrEqualTo", "GreaterOrEqual", "Less", expected)
}

// GreaterThan asserts the subject is or is not greater than expected.
func (v *Verifier) GreaterThan(expected any) *Verifier {
	v.t.Helper()
	return v.check("GreaterThan", "Greater", "LessOrEqual", expected)
}

// Implement asserts the subject does or does not implement the interface
// iface points to, as in (*io.Reader)(nil).
func (v *Verifier) Implement(iface any) *Verifier {
	v.t.Helper()
	return v.check("Implement", "Implements", "NotImplements", iface)
}

// Infinite asserts the subject is or is not an infinite number.
func (v *Verifier) Infinite() *Verifier {
	v.t.Helper()
	return v.check("Infinite", "Infinite", "NotInfinite")
}

// InstanceOf asserts the subject is or is not of the same type as sample.
func (v *Verifier) InstanceOf(sample any) *Verifier {
	v.t.Helper()
	return v.check("InstanceOf", "IsType", "NotIsType", sample)
}

// Int asserts the subject is or is not an integer.
func (v *Verifier) Int() *Verifier {
	v.t.Helper()
	return v.kind("Int", "int")
}

// Iterable asserts the subject is or is not a slice, array, map or channel.
func (v *Verifier) Iterable() *Verifier {
	v.t.Helper()
	return v.kind("Iterable", "iterable")
}

// JSON asserts the subject is or is not a valid JSON document.
func (v *Verifier) JSON() *Verifier {
	v.t.Helper()
	return v.check("JSON", "ValidJSON", "NotValidJSON")
}

// Key asserts the subject does or does not have key. Slices and arrays have
// their indexes as keys.
func (v *Verifier) Key(key any) *Verifier {
	v.t.Helper()
	return v.check("Key", "HasKey", "NotHasKey", key)
}

// LessOrEqualTo asserts the subject is or is not less than or equal to
// expected.
func (v *Verifier) LessOrEqualTo(expected any) *Verifier {
	v.t.Helper()
	return v.check("LessOrEqualTo", "LessOrEqual", "Greater", expected)
}

// LessThan asserts the subject is or is not less than expected.
func (v *Verifier) LessThan(expected any) *Verifier {
	v.t.Helper()
	return v.check("LessThan", "Less", "GreaterOrEqual", expected)
}

// Map asserts the subject is or is not a map.
func (v *Verifier) Map() *Verifier {
	v.t.Helper()
	return v.kind("Map", "map")
}

// MatchFormat asserts the subject does or does not match a format
// description such as "id=%d name=%s". See asserter.CompileFormat.
func (v *Verifier) MatchFormat(format string) *Verifier {
	v.t.Helper()
	return v.check("MatchFormat", "MatchesFormat", "NotMatchesFormat", format)
}

// MatchFormatFile is MatchFormat with the format read from file.
func (v *Verifier) MatchFormatFile(file string) *Verifier {
	v.t.Helper()
	return v.check("MatchFormatFile", "MatchesFormatFile", "NotMatchesFormatFile", file)
}

// MatchRegExp asserts the subject does or does not match expression.
func (v *Verifier) MatchRegExp(expression string) *Verifier {
	v.t.Helper()
	return v.check("MatchRegExp", "Regexp", "NotRegexp", expression)
}

// MatchSchema asserts the subject does or does not validate against the
// JSON Schema in file. Strings holding JSON are validated as documents;
// other values are marshalled first.
func (v *Verifier) MatchSchema(file string) *Verifier {
	v.t.Helper()
	return v.check("MatchSchema", "MatchesSchema", "NotMatchesSchema", file)
}

// NaN asserts the subject is or is not NaN.
func (v *Verifier) NaN() *Verifier {
	v.t.Helper()
	return v.check("NaN", "NaN", "NotNaN")
}

// Nil asserts the subject is or is not nil.
func (v *Verifier) Nil() *Verifier {
	v.t.Helper()
	return v.check("Nil", "Nil", "NotNil")
}

// Numeric asserts the subject is or is not a number or numeric string.
func (v *Verifier) Numeric() *Verifier {
	v.t.Helper()
	return v.kind("Numeric", "numeric")
}

// Object asserts the subject is or is not a struct or pointer to one.
func (v *Verifier) Object() *Verifier {
	v.t.Helper()
	return v.kind("Object", "object")
}

// SameAs asserts the subject is or is not the same as expected: the same
// pointer for pointers, an equal value of the same type otherwise.
func (v *Verifier) SameAs(expected any) *Verifier {
	v.t.Helper()
	if isPointer(expected) {
		return v.check("SameAs", "Same", "NotSame", expected)
	}
	return v.check("SameAs", "Equal", "NotEqual", expected)
}

// SameSizeAs asserts the subject does or does not have as many elements as
// expected.
func (v *Verifier) SameSizeAs(expected any) *Verifier {
	v.t.Helper()
	return v.check("SameSizeAs", "SameSize", "NotSameSize", expected)
}

// Scalar asserts the subject is or is not a bool, number or string.
func (v *Verifier) Scalar() *Verifier {
	v.t.Helper()
	return v.kind("Scalar", "scalar")
}

// StartWith asserts the subject does or does not start with prefix.
func (v *Verifier) StartWith(prefix string) *Verifier {
	v.t.Helper()
	return v.check("StartWith", "HasPrefix", "NotHasPrefix", prefix)
}

// StaticAttribute asserts the class named by the subject does or does not
// have the named static attribute.
func (v *Verifier) StaticAttribute(name string) *Verifier {
	v.t.Helper()
	return v.check("StaticAttribute", "HasStaticAttribute", "NotHasStaticAttribute", name)
}

// String asserts the subject is or is not a string.
func (v *Verifier) String() *Verifier {
	v.t.Helper()
	return v.kind("String", "string")
}

// StringLength asserts the subject does or does not have n characters.
func (v *Verifier) StringLength(n int) *Verifier {
	v.t.Helper()
	return v.check("StringLength", "StringLength", "NotStringLength", n)
}

// Subset asserts the subject does or does not contain every element of
// subset.
func (v *Verifier) Subset(subset any) *Verifier {
	v.t.Helper()
	return v.check("Subset", "Subset", "NotSubset", subset)
}

// True asserts the subject is or is not true.
func (v *Verifier) True() *Verifier {
	v.t.Helper()
	return v.check("True", "True", "NotTrue")
}

// UUID asserts the subject is or is not a valid UUID.
func (v *Verifier) UUID() *Verifier {
	v.t.Helper()
	return v.check("UUID", "UUID", "NotUUID")
}

// Zero asserts the subject is or is not the zero value of its type.
func (v *Verifier) Zero() *Verifier {
	v.t.Helper()
	return v.check("Zero", "Zero", "NotZero")
}

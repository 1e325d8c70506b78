package asserter

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/verify/packages/attribute"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

func helper(t assert.TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// asString accepts strings, byte slices and named string types.
func asString(value any) (string, bool) {
	switch s := value.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	v := reflect.ValueOf(value)
	if v.IsValid() && v.Kind() == reflect.String {
		return v.String(), true
	}
	return "", false
}

func requireString(t assert.TestingT, value any, msgAndArgs ...any) (string, bool) {
	s, ok := asString(value)
	if !ok {
		helper(t)
		assert.Fail(t, fmt.Sprintf("%#v is not a string", value), msgAndArgs...)
	}
	return s, ok
}

func requireStrings(t assert.TestingT, expected, actual any, msgAndArgs ...any) (string, string, bool) {
	e, ok := requireString(t, expected, msgAndArgs...)
	if !ok {
		return "", "", false
	}
	a, ok := requireString(t, actual, msgAndArgs...)
	return e, a, ok
}

func readFile(t assert.TestingT, path string, msgAndArgs ...any) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		helper(t)
		assert.Fail(t, fmt.Sprintf("failed to read file %q: %v", path, err), msgAndArgs...)
		return "", false
	}
	return string(data), true
}

func checkBool(t assert.TestingT, value any, want, negate bool, msgAndArgs ...any) bool {
	helper(t)
	b, ok := value.(bool)
	matches := ok && b == want
	switch {
	case !negate && !ok:
		return assert.Fail(t, fmt.Sprintf("%#v is not a bool", value), msgAndArgs...)
	case !negate && !matches:
		return assert.Fail(t, fmt.Sprintf("Should be %t", want), msgAndArgs...)
	case negate && matches:
		return assert.Fail(t, fmt.Sprintf("Should not be %t", want), msgAndArgs...)
	}
	return true
}

func notInDelta(t assert.TestingT, expected, actual any, delta float64, msgAndArgs ...any) bool {
	helper(t)
	e, eok := toFloat64(expected)
	a, aok := toFloat64(actual)
	if !eok || !aok {
		return assert.Fail(t, "Parameters must be numerical", msgAndArgs...)
	}
	if math.Abs(e-a) <= delta {
		return assert.Fail(t, fmt.Sprintf("Max difference between %v and %v allowed is %v, but values should differ by more", expected, actual, delta), msgAndArgs...)
	}
	return true
}

func equalFold(t assert.TestingT, expected, actual any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	e, a, ok := requireStrings(t, expected, actual, msgAndArgs...)
	if !ok {
		return false
	}
	if strings.EqualFold(e, a) == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("Should not be equal ignoring case: %q", a), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("Not equal ignoring case:\nexpected: %q\nactual  : %q", e, a), msgAndArgs...)
	}
	return true
}

func containsFold(t assert.TestingT, needle, haystack any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	n, h, ok := requireStrings(t, needle, haystack, msgAndArgs...)
	if !ok {
		return false
	}
	if strings.Contains(strings.ToLower(h), strings.ToLower(n)) == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%q should not contain %q ignoring case", h, n), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%q does not contain %q ignoring case", h, n), msgAndArgs...)
	}
	return true
}

func samePointer(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() != reflect.Pointer || bv.Kind() != reflect.Pointer {
		return false
	}
	return av.Type() == bv.Type() && av.Pointer() == bv.Pointer()
}

// elements returns the elements of a slice or array, or the keys of a map.
func elements(collection any) ([]any, bool) {
	v := reflect.ValueOf(collection)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}
		return out, true
	case reflect.Map:
		out := make([]any, 0, v.Len())
		for _, k := range v.MapKeys() {
			out = append(out, k.Interface())
		}
		return out, true
	}
	return nil, false
}

// values returns the elements of a slice or array, or the values of a map.
func values(collection any) ([]any, bool) {
	v := reflect.ValueOf(collection)
	if v.Kind() != reflect.Map {
		return elements(collection)
	}
	out := make([]any, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		out = append(out, iter.Value().Interface())
	}
	return out, true
}

func containsBy(t assert.TestingT, needle, haystack any, negate bool, how string, eq func(a, b any) bool, msgAndArgs ...any) bool {
	helper(t)
	if s, ok := asString(haystack); ok {
		n, ok := requireString(t, needle, msgAndArgs...)
		if !ok {
			return false
		}
		if strings.Contains(s, n) == negate {
			return assert.Fail(t, fmt.Sprintf("%q %s %q", s, containVerb(negate), n), msgAndArgs...)
		}
		return true
	}

	items, ok := elements(haystack)
	if !ok {
		return assert.Fail(t, fmt.Sprintf("%#v could not be applied builtin len()", haystack), msgAndArgs...)
	}
	found := false
	for _, item := range items {
		if eq(needle, item) {
			found = true
			break
		}
	}
	if found == negate {
		return assert.Fail(t, fmt.Sprintf("%#v %s %#v (%s)", haystack, containVerb(negate), needle, how), msgAndArgs...)
	}
	return true
}

func containVerb(negate bool) string {
	if negate {
		return "should not contain"
	}
	return "does not contain"
}

func containsOnly(t assert.TestingT, typeName string, collection any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	items, ok := values(collection)
	if !ok {
		return assert.Fail(t, fmt.Sprintf("%#v is not a collection", collection), msgAndArgs...)
	}
	all := true
	for _, item := range items {
		if !matchesType(item, typeName) {
			all = false
			break
		}
	}
	switch {
	case !negate && !all:
		return assert.Fail(t, fmt.Sprintf("%#v does not contain only values of type %s", collection, typeName), msgAndArgs...)
	case negate && all:
		return assert.Fail(t, fmt.Sprintf("%#v contains only values of type %s", collection, typeName), msgAndArgs...)
	}
	return true
}

func hasKey(t assert.TestingT, key, collection any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	v := reflect.ValueOf(collection)
	found := false
	switch v.Kind() {
	case reflect.Map:
		k := reflect.ValueOf(key)
		if k.IsValid() && k.Type().ConvertibleTo(v.Type().Key()) {
			found = v.MapIndex(k.Convert(v.Type().Key())).IsValid()
		}
	case reflect.Slice, reflect.Array, reflect.String:
		if i, ok := key.(int); ok {
			found = i >= 0 && i < v.Len()
		}
	default:
		return assert.Fail(t, fmt.Sprintf("%#v does not have keys", collection), msgAndArgs...)
	}
	if found == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%#v should not have key %#v", collection, key), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%#v does not have key %#v", collection, key), msgAndArgs...)
	}
	return true
}

func length(value any) (int, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return v.Len(), true
	}
	return 0, false
}

func notLen(t assert.TestingT, object any, n int, msgAndArgs ...any) bool {
	helper(t)
	l, ok := length(object)
	if !ok {
		return assert.Fail(t, fmt.Sprintf("\"%v\" could not be applied builtin len()", object), msgAndArgs...)
	}
	if l == n {
		return assert.Fail(t, fmt.Sprintf("\"%v\" should not have %d item(s)", object, n), msgAndArgs...)
	}
	return true
}

func stringLength(t assert.TestingT, n int, value any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	s, ok := requireString(t, value, msgAndArgs...)
	if !ok {
		return false
	}
	l := utf8.RuneCountInString(s)
	if (l == n) == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%q should not have length %d", s, n), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%q should have length %d, has %d", s, n, l), msgAndArgs...)
	}
	return true
}

func sameSize(t assert.TestingT, expected, actual any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	e, eok := length(expected)
	a, aok := length(actual)
	if !eok || !aok {
		return assert.Fail(t, "both values must have a length", msgAndArgs...)
	}
	if (e == a) == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("sizes should differ, both are %d", a), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("size %d does not match expected size %d", a, e), msgAndArgs...)
	}
	return true
}

func affix(t assert.TestingT, fix, value any, suffix, negate bool, msgAndArgs ...any) bool {
	helper(t)
	f, s, ok := requireStrings(t, fix, value, msgAndArgs...)
	if !ok {
		return false
	}
	has, what := strings.HasPrefix(s, f), "start with"
	if suffix {
		has, what = strings.HasSuffix(s, f), "end with"
	}
	if has == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%q should not %s %q", s, what, f), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%q does not %s %q", s, what, f), msgAndArgs...)
	}
	return true
}

func matchesFormat(t assert.TestingT, format, value any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	f, s, ok := requireStrings(t, format, value, msgAndArgs...)
	if !ok {
		return false
	}
	re, err := CompileFormat(f)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("invalid format %q: %v", f, err), msgAndArgs...)
	}
	if negate {
		return assert.NotRegexp(t, re, s, msgAndArgs...)
	}
	return assert.Regexp(t, re, s, msgAndArgs...)
}

func stringEqualsFile(t assert.TestingT, file, value any, fold, negate bool, msgAndArgs ...any) bool {
	helper(t)
	path, s, ok := requireStrings(t, file, value, msgAndArgs...)
	if !ok {
		return false
	}
	contents, ok := readFile(t, path, msgAndArgs...)
	if !ok {
		return false
	}
	switch {
	case fold:
		return equalFold(t, contents, s, negate, msgAndArgs...)
	case negate:
		return assert.NotEqual(t, contents, s, msgAndArgs...)
	}
	return assert.Equal(t, contents, s, msgAndArgs...)
}

func filesEqual(t assert.TestingT, expectedFile, actualFile any, fold, negate bool, msgAndArgs ...any) bool {
	helper(t)
	path, ok := requireString(t, actualFile, msgAndArgs...)
	if !ok {
		return false
	}
	contents, ok := readFile(t, path, msgAndArgs...)
	if !ok {
		return false
	}
	return stringEqualsFile(t, expectedFile, contents, fold, negate, msgAndArgs...)
}

func notJSONEq(t assert.TestingT, expected, actual any, msgAndArgs ...any) bool {
	helper(t)
	e, a, ok := requireStrings(t, expected, actual, msgAndArgs...)
	if !ok {
		return false
	}
	var ev, av any
	if err := json.Unmarshal([]byte(e), &ev); err != nil {
		return assert.Fail(t, fmt.Sprintf("Expected value ('%s') is not valid json.\nJSON parsing error: '%s'", e, err.Error()), msgAndArgs...)
	}
	if err := json.Unmarshal([]byte(a), &av); err != nil {
		return assert.Fail(t, fmt.Sprintf("Input ('%s') needs to be valid json.\nJSON parsing error: '%s'", a, err.Error()), msgAndArgs...)
	}
	return assert.NotEqual(t, ev, av, msgAndArgs...)
}

func jsonEq(t assert.TestingT, expected, actual any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	if negate {
		return notJSONEq(t, expected, actual, msgAndArgs...)
	}
	e, a, ok := requireStrings(t, expected, actual, msgAndArgs...)
	if !ok {
		return false
	}
	return assert.JSONEq(t, e, a, msgAndArgs...)
}

func yamlEq(t assert.TestingT, expected, actual any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	e, a, ok := requireStrings(t, expected, actual, msgAndArgs...)
	if !ok {
		return false
	}
	if !negate {
		return assert.YAMLEq(t, e, a, msgAndArgs...)
	}
	var ev, av any
	if err := yaml.Unmarshal([]byte(e), &ev); err != nil {
		return assert.Fail(t, fmt.Sprintf("Expected value ('%s') is not valid yaml.\nYAML parsing error: '%s'", e, err.Error()), msgAndArgs...)
	}
	if err := yaml.Unmarshal([]byte(a), &av); err != nil {
		return assert.Fail(t, fmt.Sprintf("Input ('%s') needs to be valid yaml.\nYAML error: '%s'", a, err.Error()), msgAndArgs...)
	}
	return assert.NotEqual(t, ev, av, msgAndArgs...)
}

func fileContents(t assert.TestingT, file any, msgAndArgs ...any) (string, bool) {
	path, ok := requireString(t, file, msgAndArgs...)
	if !ok {
		return "", false
	}
	return readFile(t, path, msgAndArgs...)
}

func validJSON(t assert.TestingT, value any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	s, ok := requireString(t, value, msgAndArgs...)
	if !ok {
		return false
	}
	if gjson.Valid(s) == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%q should not be valid JSON", s), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%q is not valid JSON", s), msgAndArgs...)
	}
	return true
}

func validUUID(t assert.TestingT, value any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	var err error
	switch v := value.(type) {
	case uuid.UUID:
	default:
		s, ok := requireString(t, v, msgAndArgs...)
		if !ok {
			return false
		}
		_, err = uuid.Parse(s)
	}
	if (err == nil) == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%v should not be a valid UUID", value), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%v is not a valid UUID: %v", value, err), msgAndArgs...)
	}
	return true
}

func matchesSchema(t assert.TestingT, schemaFile, value any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	schemaData, ok := fileContents(t, schemaFile, msgAndArgs...)
	if !ok {
		return false
	}

	var document []byte
	if s, ok := asString(value); ok && gjson.Valid(s) {
		document = []byte(s)
	} else {
		data, err := json.Marshal(value)
		if err != nil {
			return assert.Fail(t, fmt.Sprintf("failed to marshal actual value: %v", err), msgAndArgs...)
		}
		document = data
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schemaData), gojsonschema.NewBytesLoader(document))
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("schema validation error: %v", err), msgAndArgs...)
	}

	switch {
	case negate && result.Valid():
		return assert.Fail(t, fmt.Sprintf("%s should not match schema %v", document, schemaFile), msgAndArgs...)
	case !negate && !result.Valid():
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return assert.Fail(t, fmt.Sprintf("schema validation failed: %s", strings.Join(problems, "; ")), msgAndArgs...)
	}
	return true
}

func kind(t assert.TestingT, name, value any, negate bool, msgAndArgs ...any) bool {
	helper(t)
	k, ok := requireString(t, name, msgAndArgs...)
	if !ok {
		return false
	}
	if _, known := kindGroups[k]; !known {
		return assert.Fail(t, fmt.Sprintf("unknown kind %q", k), msgAndArgs...)
	}
	if IsKind(value, k) == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%#v should not be of kind %s", value, k), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%#v is not of kind %s", value, k), msgAndArgs...)
	}
	return true
}

func notIsType(t assert.TestingT, expectedType, object any, msgAndArgs ...any) bool {
	helper(t)
	if assert.ObjectsAreEqual(reflect.TypeOf(object), reflect.TypeOf(expectedType)) {
		return assert.Fail(t, fmt.Sprintf("Object should not be of type %v", reflect.TypeOf(expectedType)), msgAndArgs...)
	}
	return true
}

func floatClass(t assert.TestingT, value any, class string, negate bool, msgAndArgs ...any) bool {
	helper(t)
	f, ok := toFloat64(value)
	if !ok {
		return assert.Fail(t, fmt.Sprintf("%#v is not a number", value), msgAndArgs...)
	}
	var is bool
	switch class {
	case "finite":
		is = !math.IsInf(f, 0) && !math.IsNaN(f)
	case "infinite":
		is = math.IsInf(f, 0)
	case "NaN":
		is = math.IsNaN(f)
	}
	if is == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%v should not be %s", f, class), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%v is not %s", f, class), msgAndArgs...)
	}
	return true
}

func hasAttribute(t assert.TestingT, name, subject any, static, negate bool, msgAndArgs ...any) bool {
	helper(t)
	attr, ok := requireString(t, name, msgAndArgs...)
	if !ok {
		return false
	}
	var has bool
	var err error
	if static {
		className, ok := requireString(t, subject, msgAndArgs...)
		if !ok {
			return false
		}
		has, err = attribute.HasStatic(className, attr)
	} else {
		has, err = attribute.Has(subject, attr)
	}
	if err != nil {
		return assert.Fail(t, err.Error(), msgAndArgs...)
	}
	if has == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%v should not have attribute %q", subject, attr), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%v does not have attribute %q", subject, attr), msgAndArgs...)
	}
	return true
}

func access(t assert.TestingT, path any, flag int, what string, negate bool, msgAndArgs ...any) bool {
	helper(t)
	p, ok := requireString(t, path, msgAndArgs...)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("unable to find %q: %v", p, err), msgAndArgs...)
	}
	if info.IsDir() && flag == os.O_WRONLY {
		// Directories cannot be opened for writing; probe with a temp file.
		f, err := os.CreateTemp(p, ".verify-*")
		if err == nil {
			f.Close()
			os.Remove(f.Name())
		}
		return accessResult(t, p, err == nil, what, negate, msgAndArgs...)
	}
	f, err := os.OpenFile(p, flag, 0)
	if err == nil {
		f.Close()
	}
	return accessResult(t, p, err == nil, what, negate, msgAndArgs...)
}

func accessResult(t assert.TestingT, path string, ok bool, what string, negate bool, msgAndArgs ...any) bool {
	if ok == negate {
		if negate {
			return assert.Fail(t, fmt.Sprintf("%q should not be %s", path, what), msgAndArgs...)
		}
		return assert.Fail(t, fmt.Sprintf("%q is not %s", path, what), msgAndArgs...)
	}
	return true
}

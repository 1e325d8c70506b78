package asserter

import (
	"os"

	"github.com/stretchr/testify/assert"
)

type tt = assert.TestingT

// builtins holds the default assertion table. Each entry documents its
// operands; expected values come first and the actual value last.
var builtins = map[string]entry{
	// (expected, actual)
	"Equal":            {2, func(t tt, o []any, m ...any) bool { return assert.Equal(t, o[0], o[1], m...) }},
	"NotEqual":         {2, func(t tt, o []any, m ...any) bool { return assert.NotEqual(t, o[0], o[1], m...) }},
	"EqualValues":      {2, func(t tt, o []any, m ...any) bool { return assert.EqualValues(t, o[0], o[1], m...) }},
	"NotEqualValues":   {2, func(t tt, o []any, m ...any) bool { return assert.NotEqualValues(t, o[0], o[1], m...) }},
	"ElementsMatch":    {2, func(t tt, o []any, m ...any) bool { return assert.ElementsMatch(t, o[0], o[1], m...) }},
	"NotElementsMatch": {2, func(t tt, o []any, m ...any) bool { return assert.NotElementsMatch(t, o[0], o[1], m...) }},
	"EqualFold":        {2, func(t tt, o []any, m ...any) bool { return equalFold(t, o[0], o[1], false, m...) }},
	"NotEqualFold":     {2, func(t tt, o []any, m ...any) bool { return equalFold(t, o[0], o[1], true, m...) }},
	"Same":             {2, func(t tt, o []any, m ...any) bool { return assert.Same(t, o[0], o[1], m...) }},
	"NotSame":          {2, func(t tt, o []any, m ...any) bool { return assert.NotSame(t, o[0], o[1], m...) }},
	"SameSize":         {2, func(t tt, o []any, m ...any) bool { return sameSize(t, o[0], o[1], false, m...) }},
	"NotSameSize":      {2, func(t tt, o []any, m ...any) bool { return sameSize(t, o[0], o[1], true, m...) }},
	"JSONEq":           {2, func(t tt, o []any, m ...any) bool { return jsonEq(t, o[0], o[1], false, m...) }},
	"NotJSONEq":        {2, func(t tt, o []any, m ...any) bool { return jsonEq(t, o[0], o[1], true, m...) }},
	"YAMLEq":           {2, func(t tt, o []any, m ...any) bool { return yamlEq(t, o[0], o[1], false, m...) }},
	"NotYAMLEq":        {2, func(t tt, o []any, m ...any) bool { return yamlEq(t, o[0], o[1], true, m...) }},
	"IsType":           {2, func(t tt, o []any, m ...any) bool { return assert.IsType(t, o[0], o[1], m...) }},
	"NotIsType":        {2, func(t tt, o []any, m ...any) bool { return notIsType(t, o[0], o[1], m...) }},
	"Implements":       {2, func(t tt, o []any, m ...any) bool { return assert.Implements(t, o[0], o[1], m...) }},
	"NotImplements":    {2, func(t tt, o []any, m ...any) bool { return assert.NotImplements(t, o[0], o[1], m...) }},

	// (expected, actual, delta)
	"InDelta": {3, func(t tt, o []any, m ...any) bool {
		d, _ := toFloat64(o[2])
		return assert.InDelta(t, o[0], o[1], d, m...)
	}},
	"NotInDelta": {3, func(t tt, o []any, m ...any) bool {
		d, _ := toFloat64(o[2])
		return notInDelta(t, o[0], o[1], d, m...)
	}},

	// (expected, actual): the actual value must be greater, less...
	"Greater":        {2, func(t tt, o []any, m ...any) bool { return assert.Greater(t, o[1], o[0], m...) }},
	"GreaterOrEqual": {2, func(t tt, o []any, m ...any) bool { return assert.GreaterOrEqual(t, o[1], o[0], m...) }},
	"Less":           {2, func(t tt, o []any, m ...any) bool { return assert.Less(t, o[1], o[0], m...) }},
	"LessOrEqual":    {2, func(t tt, o []any, m ...any) bool { return assert.LessOrEqual(t, o[1], o[0], m...) }},

	// (needle, haystack)
	"Contains":    {2, func(t tt, o []any, m ...any) bool { return assert.Contains(t, o[1], o[0], m...) }},
	"NotContains": {2, func(t tt, o []any, m ...any) bool { return assert.NotContains(t, o[1], o[0], m...) }},
	"ContainsFold": {2, func(t tt, o []any, m ...any) bool {
		return containsFold(t, o[0], o[1], false, m...)
	}},
	"NotContainsFold": {2, func(t tt, o []any, m ...any) bool {
		return containsFold(t, o[0], o[1], true, m...)
	}},
	"ContainsSame": {2, func(t tt, o []any, m ...any) bool {
		return containsBy(t, o[0], o[1], false, "same", samePointer, m...)
	}},
	"NotContainsSame": {2, func(t tt, o []any, m ...any) bool {
		return containsBy(t, o[0], o[1], true, "same", samePointer, m...)
	}},
	"ContainsEqualValues": {2, func(t tt, o []any, m ...any) bool {
		return containsBy(t, o[0], o[1], false, "equal values", assert.ObjectsAreEqualValues, m...)
	}},
	"NotContainsEqualValues": {2, func(t tt, o []any, m ...any) bool {
		return containsBy(t, o[0], o[1], true, "equal values", assert.ObjectsAreEqualValues, m...)
	}},
	"HasKey":    {2, func(t tt, o []any, m ...any) bool { return hasKey(t, o[0], o[1], false, m...) }},
	"NotHasKey": {2, func(t tt, o []any, m ...any) bool { return hasKey(t, o[0], o[1], true, m...) }},
	"Subset":    {2, func(t tt, o []any, m ...any) bool { return assert.Subset(t, o[1], o[0], m...) }},
	"NotSubset": {2, func(t tt, o []any, m ...any) bool { return assert.NotSubset(t, o[1], o[0], m...) }},

	// (type or kind name, collection)
	"ContainsOnly": {2, func(t tt, o []any, m ...any) bool {
		name, _ := asString(o[0])
		return containsOnly(t, name, o[1], false, m...)
	}},
	"NotContainsOnly": {2, func(t tt, o []any, m ...any) bool {
		name, _ := asString(o[0])
		return containsOnly(t, name, o[1], true, m...)
	}},

	// (kind name, actual)
	"Kind":    {2, func(t tt, o []any, m ...any) bool { return kind(t, o[0], o[1], false, m...) }},
	"NotKind": {2, func(t tt, o []any, m ...any) bool { return kind(t, o[0], o[1], true, m...) }},

	// (length, actual)
	"Len": {2, func(t tt, o []any, m ...any) bool {
		n, _ := o[0].(int)
		return assert.Len(t, o[1], n, m...)
	}},
	"NotLen": {2, func(t tt, o []any, m ...any) bool {
		n, _ := o[0].(int)
		return notLen(t, o[1], n, m...)
	}},
	"StringLength": {2, func(t tt, o []any, m ...any) bool {
		n, _ := o[0].(int)
		return stringLength(t, n, o[1], false, m...)
	}},
	"NotStringLength": {2, func(t tt, o []any, m ...any) bool {
		n, _ := o[0].(int)
		return stringLength(t, n, o[1], true, m...)
	}},

	// (prefix or suffix, actual)
	"HasPrefix":    {2, func(t tt, o []any, m ...any) bool { return affix(t, o[0], o[1], false, false, m...) }},
	"NotHasPrefix": {2, func(t tt, o []any, m ...any) bool { return affix(t, o[0], o[1], false, true, m...) }},
	"HasSuffix":    {2, func(t tt, o []any, m ...any) bool { return affix(t, o[0], o[1], true, false, m...) }},
	"NotHasSuffix": {2, func(t tt, o []any, m ...any) bool { return affix(t, o[0], o[1], true, true, m...) }},

	// (pattern, actual)
	"Regexp":           {2, func(t tt, o []any, m ...any) bool { return assert.Regexp(t, o[0], o[1], m...) }},
	"NotRegexp":        {2, func(t tt, o []any, m ...any) bool { return assert.NotRegexp(t, o[0], o[1], m...) }},
	"MatchesFormat":    {2, func(t tt, o []any, m ...any) bool { return matchesFormat(t, o[0], o[1], false, m...) }},
	"NotMatchesFormat": {2, func(t tt, o []any, m ...any) bool { return matchesFormat(t, o[0], o[1], true, m...) }},
	"MatchesFormatFile": {2, func(t tt, o []any, m ...any) bool {
		format, ok := fileContents(t, o[0], m...)
		return ok && matchesFormat(t, format, o[1], false, m...)
	}},
	"NotMatchesFormatFile": {2, func(t tt, o []any, m ...any) bool {
		format, ok := fileContents(t, o[0], m...)
		return ok && matchesFormat(t, format, o[1], true, m...)
	}},

	// (file, actual string)
	"StringEqualsFile": {2, func(t tt, o []any, m ...any) bool {
		return stringEqualsFile(t, o[0], o[1], false, false, m...)
	}},
	"NotStringEqualsFile": {2, func(t tt, o []any, m ...any) bool {
		return stringEqualsFile(t, o[0], o[1], false, true, m...)
	}},
	"StringEqualsFileFold": {2, func(t tt, o []any, m ...any) bool {
		return stringEqualsFile(t, o[0], o[1], true, false, m...)
	}},
	"NotStringEqualsFileFold": {2, func(t tt, o []any, m ...any) bool {
		return stringEqualsFile(t, o[0], o[1], true, true, m...)
	}},
	"JSONEqFile": {2, func(t tt, o []any, m ...any) bool {
		expected, ok := fileContents(t, o[0], m...)
		return ok && jsonEq(t, expected, o[1], false, m...)
	}},
	"NotJSONEqFile": {2, func(t tt, o []any, m ...any) bool {
		expected, ok := fileContents(t, o[0], m...)
		return ok && jsonEq(t, expected, o[1], true, m...)
	}},
	"MatchesSchema":    {2, func(t tt, o []any, m ...any) bool { return matchesSchema(t, o[0], o[1], false, m...) }},
	"NotMatchesSchema": {2, func(t tt, o []any, m ...any) bool { return matchesSchema(t, o[0], o[1], true, m...) }},

	// (attribute name, object or class name)
	"HasAttribute":    {2, func(t tt, o []any, m ...any) bool { return hasAttribute(t, o[0], o[1], false, false, m...) }},
	"NotHasAttribute": {2, func(t tt, o []any, m ...any) bool { return hasAttribute(t, o[0], o[1], false, true, m...) }},
	"HasStaticAttribute": {2, func(t tt, o []any, m ...any) bool {
		return hasAttribute(t, o[0], o[1], true, false, m...)
	}},
	"NotHasStaticAttribute": {2, func(t tt, o []any, m ...any) bool {
		return hasAttribute(t, o[0], o[1], true, true, m...)
	}},

	// (actual)
	"True":         {1, func(t tt, o []any, m ...any) bool { return checkBool(t, o[0], true, false, m...) }},
	"NotTrue":      {1, func(t tt, o []any, m ...any) bool { return checkBool(t, o[0], true, true, m...) }},
	"False":        {1, func(t tt, o []any, m ...any) bool { return checkBool(t, o[0], false, false, m...) }},
	"NotFalse":     {1, func(t tt, o []any, m ...any) bool { return checkBool(t, o[0], false, true, m...) }},
	"Nil":          {1, func(t tt, o []any, m ...any) bool { return assert.Nil(t, o[0], m...) }},
	"NotNil":       {1, func(t tt, o []any, m ...any) bool { return assert.NotNil(t, o[0], m...) }},
	"Empty":        {1, func(t tt, o []any, m ...any) bool { return assert.Empty(t, o[0], m...) }},
	"NotEmpty":     {1, func(t tt, o []any, m ...any) bool { return assert.NotEmpty(t, o[0], m...) }},
	"Zero":         {1, func(t tt, o []any, m ...any) bool { return assert.Zero(t, o[0], m...) }},
	"NotZero":      {1, func(t tt, o []any, m ...any) bool { return assert.NotZero(t, o[0], m...) }},
	"Finite":       {1, func(t tt, o []any, m ...any) bool { return floatClass(t, o[0], "finite", false, m...) }},
	"NotFinite":    {1, func(t tt, o []any, m ...any) bool { return floatClass(t, o[0], "finite", true, m...) }},
	"Infinite":     {1, func(t tt, o []any, m ...any) bool { return floatClass(t, o[0], "infinite", false, m...) }},
	"NotInfinite":  {1, func(t tt, o []any, m ...any) bool { return floatClass(t, o[0], "infinite", true, m...) }},
	"NaN":          {1, func(t tt, o []any, m ...any) bool { return floatClass(t, o[0], "NaN", false, m...) }},
	"NotNaN":       {1, func(t tt, o []any, m ...any) bool { return floatClass(t, o[0], "NaN", true, m...) }},
	"ValidJSON":    {1, func(t tt, o []any, m ...any) bool { return validJSON(t, o[0], false, m...) }},
	"NotValidJSON": {1, func(t tt, o []any, m ...any) bool { return validJSON(t, o[0], true, m...) }},
	"UUID":         {1, func(t tt, o []any, m ...any) bool { return validUUID(t, o[0], false, m...) }},
	"NotUUID":      {1, func(t tt, o []any, m ...any) bool { return validUUID(t, o[0], true, m...) }},

	// (path)
	"FileExists":   {1, func(t tt, o []any, m ...any) bool { return pathCheck(t, o[0], assert.FileExists, m...) }},
	"NoFileExists": {1, func(t tt, o []any, m ...any) bool { return pathCheck(t, o[0], assert.NoFileExists, m...) }},
	"DirExists":    {1, func(t tt, o []any, m ...any) bool { return pathCheck(t, o[0], assert.DirExists, m...) }},
	"NoDirExists":  {1, func(t tt, o []any, m ...any) bool { return pathCheck(t, o[0], assert.NoDirExists, m...) }},
	"Readable":     {1, func(t tt, o []any, m ...any) bool { return access(t, o[0], os.O_RDONLY, "readable", false, m...) }},
	"NotReadable":  {1, func(t tt, o []any, m ...any) bool { return access(t, o[0], os.O_RDONLY, "readable", true, m...) }},
	"Writable":     {1, func(t tt, o []any, m ...any) bool { return access(t, o[0], os.O_WRONLY, "writable", false, m...) }},
	"NotWritable":  {1, func(t tt, o []any, m ...any) bool { return access(t, o[0], os.O_WRONLY, "writable", true, m...) }},

	// (expected file, actual file)
	"FileEquals": {2, func(t tt, o []any, m ...any) bool { return filesEqual(t, o[0], o[1], false, false, m...) }},
	"NotFileEquals": {2, func(t tt, o []any, m ...any) bool {
		return filesEqual(t, o[0], o[1], false, true, m...)
	}},
	"FileEqualsFold": {2, func(t tt, o []any, m ...any) bool {
		return filesEqual(t, o[0], o[1], true, false, m...)
	}},
	"NotFileEqualsFold": {2, func(t tt, o []any, m ...any) bool {
		return filesEqual(t, o[0], o[1], true, true, m...)
	}},
	"JSONFileEq": {2, func(t tt, o []any, m ...any) bool {
		return fileCompare(t, o[0], o[1], m, func(e, a string) bool { return jsonEq(t, e, a, false, m...) })
	}},
	"NotJSONFileEq": {2, func(t tt, o []any, m ...any) bool {
		return fileCompare(t, o[0], o[1], m, func(e, a string) bool { return jsonEq(t, e, a, true, m...) })
	}},
	"YAMLFileEq": {2, func(t tt, o []any, m ...any) bool {
		return fileCompare(t, o[0], o[1], m, func(e, a string) bool { return yamlEq(t, e, a, false, m...) })
	}},
	"NotYAMLFileEq": {2, func(t tt, o []any, m ...any) bool {
		return fileCompare(t, o[0], o[1], m, func(e, a string) bool { return yamlEq(t, e, a, true, m...) })
	}},
}

func pathCheck(t tt, path any, check func(assert.TestingT, string, ...any) bool, msgAndArgs ...any) bool {
	helper(t)
	p, ok := requireString(t, path, msgAndArgs...)
	return ok && check(t, p, msgAndArgs...)
}

func fileCompare(t tt, expectedFile, actualFile any, msgAndArgs []any, compare func(expected, actual string) bool) bool {
	helper(t)
	expected, ok := fileContents(t, expectedFile, msgAndArgs...)
	if !ok {
		return false
	}
	actual, ok := fileContents(t, actualFile, msgAndArgs...)
	return ok && compare(expected, actual)
}

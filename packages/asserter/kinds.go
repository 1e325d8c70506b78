package asserter

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

var kindGroups = map[string]func(v reflect.Value) bool{
	"array": func(v reflect.Value) bool {
		return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
	},
	"bool": func(v reflect.Value) bool {
		return v.Kind() == reflect.Bool
	},
	"callable": func(v reflect.Value) bool {
		return v.Kind() == reflect.Func && !v.IsNil()
	},
	"float": func(v reflect.Value) bool {
		return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
	},
	"int": isInteger,
	"iterable": func(v reflect.Value) bool {
		switch v.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
			return true
		}
		return false
	},
	"map": func(v reflect.Value) bool {
		return v.Kind() == reflect.Map
	},
	"numeric": func(v reflect.Value) bool {
		if isInteger(v) || isFloat(v) {
			return true
		}
		if v.Kind() == reflect.String {
			_, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
			return err == nil
		}
		return false
	},
	"object": func(v reflect.Value) bool {
		if v.Kind() == reflect.Pointer && !v.IsNil() {
			v = v.Elem()
		}
		return v.Kind() == reflect.Struct
	},
	"scalar": func(v reflect.Value) bool {
		return v.Kind() == reflect.Bool || v.Kind() == reflect.String || isInteger(v) || isFloat(v)
	},
	"string": func(v reflect.Value) bool {
		return v.Kind() == reflect.String
	},
}

// KindNames returns the kind group names understood by the Kind assertion.
func KindNames() []string {
	names := make([]string, 0, len(kindGroups))
	for name := range kindGroups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKind reports whether value belongs to the named kind group. Unknown
// group names never match.
func IsKind(value any, kind string) bool {
	match, ok := kindGroups[kind]
	if !ok {
		return false
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return false
	}
	return match(v)
}

// matchesType reports whether value is of the named Go type (as printed by
// reflect) or belongs to the named kind group.
func matchesType(value any, typeName string) bool {
	if value == nil {
		return typeName == "nil"
	}
	if reflect.TypeOf(value).String() == typeName {
		return true
	}
	return IsKind(value, typeName)
}

func isInteger(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

// toFloat64 converts any integer or float value to float64.
func toFloat64(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	switch {
	case !v.IsValid():
		return 0, false
	case isFloat(v):
		return v.Float(), true
	case v.CanInt():
		return float64(v.Int()), true
	case v.CanUint():
		return float64(v.Uint()), true
	}
	return 0, false
}

package attribute

import (
	"reflect"
	"unsafe"

	"github.com/microbus-io/errors"
)

// Resolve returns the current value of the named attribute of subject.
//
// A string subject is treated as a class name and resolved against the
// static attributes of the registered class and the classes it embeds.
// Any other subject must be a struct, a non-nil pointer to one, or a map
// keyed by strings.
func Resolve(subject any, name string) (any, error) {
	if className, ok := subject.(string); ok {
		c, found := lookupClass(className)
		if !found {
			return nil, errors.New("could not find class '%s'", className, ErrInvalidSubject, "class", className)
		}
		return resolveStatic(c, name)
	}
	return resolveObject(subject, name)
}

// HasStatic reports whether the named class, or any class it embeds,
// declares the named static attribute.
func HasStatic(className, name string) (bool, error) {
	_, err := Resolve(className, name)
	if errors.Is(err, ErrAttributeNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Has reports whether subject has the named attribute. For a class name,
// both struct fields of the class and its static attributes count.
func Has(subject any, name string) (bool, error) {
	if className, ok := subject.(string); ok {
		c, found := lookupClass(className)
		if !found {
			return false, errors.New("could not find class '%s'", className, ErrInvalidSubject, "class", className)
		}
		if _, ok := findField(c.typ, name); ok {
			return true, nil
		}
		return HasStatic(className, name)
	}
	_, err := resolveObject(subject, name)
	if errors.Is(err, ErrAttributeNotFound) {
		return false, nil
	}
	return err == nil, err
}

func resolveStatic(c *class, name string) (any, error) {
	if v, ok := c.statics[name]; ok {
		return v.Interface(), nil
	}
	seen := map[reflect.Type]bool{c.typ: true}
	level := unseenTypes(embeddedTypes(c.typ), seen)
	for len(level) > 0 {
		var next []reflect.Type
		for _, cur := range level {
			if c, ok := lookupType(cur); ok {
				if v, ok := c.statics[name]; ok {
					return v.Interface(), nil
				}
			}
			next = append(next, unseenTypes(embeddedTypes(cur), seen)...)
		}
		level = next
	}
	return nil, errors.New("could not find static attribute '%s'", name, ErrAttributeNotFound, "attribute", name)
}

func resolveObject(subject any, name string) (any, error) {
	v := reflect.ValueOf(subject)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, errors.New("subject must be either an object or class name, got nil %s", v.Type(), ErrInvalidSubject)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, errors.New("subject must be either an object or class name, got %s", v.Type(), ErrInvalidSubject)
		}
		val := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !val.IsValid() {
			return nil, errors.New("could not find object attribute '%s'", name, ErrAttributeNotFound, "attribute", name)
		}
		return val.Interface(), nil
	case reflect.Struct:
	case reflect.Invalid:
		return nil, errors.New("subject must be either an object or class name, got nil", ErrInvalidSubject)
	default:
		return nil, errors.New("subject must be either an object or class name, got %s", v.Type(), ErrInvalidSubject)
	}

	// Unexported fields can only be read through an addressable value.
	if !v.CanAddr() {
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}

	seen := make(map[visit]bool)
	level := unseenValues([]reflect.Value{v}, seen)
	for len(level) > 0 {
		var next []reflect.Value
		for _, cur := range level {
			t := cur.Type()
			for i := 0; i < t.NumField(); i++ {
				if t.Field(i).Name == name {
					return readField(cur.Field(i)), nil
				}
			}
			next = append(next, unseenValues(embeddedValues(cur), seen)...)
		}
		level = next
	}
	return nil, errors.New("could not find object attribute '%s'", name, ErrAttributeNotFound, "attribute", name)
}

// readField returns a copy of the field's value, unexported or not.
func readField(f reflect.Value) any {
	if f.CanInterface() {
		return f.Interface()
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem().Interface()
}

func findField(t reflect.Type, name string) (reflect.StructField, bool) {
	seen := make(map[reflect.Type]bool)
	level := unseenTypes([]reflect.Type{t}, seen)
	for len(level) > 0 {
		var next []reflect.Type
		for _, cur := range level {
			if f, ok := cur.FieldByName(name); ok && len(f.Index) == 1 {
				return f, true
			}
			next = append(next, unseenTypes(embeddedTypes(cur), seen)...)
		}
		level = next
	}
	return reflect.StructField{}, false
}

func embeddedTypes(t reflect.Type) []reflect.Type {
	var out []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			out = append(out, ft)
		}
	}
	return out
}

func embeddedValues(v reflect.Value) []reflect.Value {
	var out []reflect.Value
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).Anonymous {
			continue
		}
		f := v.Field(i)
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}
		if f.Kind() == reflect.Struct {
			out = append(out, f)
		}
	}
	return out
}

// Embedding chains may loop back through pointers, as in
// type Node struct{ *Node }, so every walk skips what it has seen.

func unseenTypes(types []reflect.Type, seen map[reflect.Type]bool) []reflect.Type {
	out := types[:0]
	for _, t := range types {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// visit identifies a struct value by type and address; an embedded struct
// at offset zero shares its parent's address.
type visit struct {
	typ  reflect.Type
	addr uintptr
}

func unseenValues(values []reflect.Value, seen map[visit]bool) []reflect.Value {
	out := values[:0]
	for _, v := range values {
		key := visit{typ: v.Type(), addr: v.UnsafeAddr()}
		if !seen[key] {
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

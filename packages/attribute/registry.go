package attribute

import (
	"reflect"
	"sort"
	"sync"

	"github.com/microbus-io/errors"
)

// Statics maps a static attribute name to a pointer to the variable that
// holds it. The variable is read each time the attribute is resolved.
type Statics map[string]any

// class is a registered type and its static attributes.
type class struct {
	name    string
	typ     reflect.Type
	statics map[string]reflect.Value
}

var registry = struct {
	sync.RWMutex
	byName map[string]*class
	byType map[reflect.Type]*class
}{
	byName: make(map[string]*class),
	byType: make(map[reflect.Type]*class),
}

// ClassName returns the name a sample's type is registered under by
// Register: the package path and type name joined by a dot.
func ClassName(sample any) string {
	t := reflect.TypeOf(sample)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// Register makes the sample's type resolvable by ClassName(sample) and
// attaches its static attributes.
func Register(sample any, statics Statics) error {
	return RegisterAs(ClassName(sample), sample, statics)
}

// MustRegister is like Register but panics on error.
func MustRegister(sample any, statics Statics) {
	if err := Register(sample, statics); err != nil {
		panic(err)
	}
}

// RegisterAs registers the sample's type under an explicit class name.
// Registering the same name again replaces the earlier registration. When a
// type is registered under several names, classes embedding it inherit the
// statics of the latest registration.
func RegisterAs(name string, sample any, statics Statics) error {
	t := reflect.TypeOf(sample)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name == "" || t == nil || t.Kind() != reflect.Struct {
		return errors.New("cannot register '%s' as a class: sample must be a struct", name, ErrInvalidSubject)
	}

	c := &class{
		name:    name,
		typ:     t,
		statics: make(map[string]reflect.Value, len(statics)),
	}
	for attr, ptr := range statics {
		v := reflect.ValueOf(ptr)
		if v.Kind() != reflect.Pointer || v.IsNil() {
			return errors.New("static attribute '%s' of class '%s'", attr, name, ErrInvalidStatic)
		}
		c.statics[attr] = v.Elem()
	}

	registry.Lock()
	defer registry.Unlock()
	if old, ok := registry.byName[name]; ok && registry.byType[old.typ] == old {
		delete(registry.byType, old.typ)
	}
	registry.byName[name] = c
	registry.byType[t] = c
	return nil
}

// Unregister removes a class registration. It is a no-op for unknown names.
func Unregister(name string) {
	registry.Lock()
	defer registry.Unlock()
	if c, ok := registry.byName[name]; ok {
		if registry.byType[c.typ] == c {
			delete(registry.byType, c.typ)
		}
		delete(registry.byName, name)
	}
}

// Classes returns the registered class names in sorted order.
func Classes() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.byName))
	for name := range registry.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClassExists reports whether a class name is registered.
func ClassExists(name string) bool {
	registry.RLock()
	defer registry.RUnlock()
	_, ok := registry.byName[name]
	return ok
}

func lookupClass(name string) (*class, bool) {
	registry.RLock()
	defer registry.RUnlock()
	c, ok := registry.byName[name]
	return c, ok
}

func lookupType(t reflect.Type) (*class, bool) {
	registry.RLock()
	defer registry.RUnlock()
	c, ok := registry.byType[t]
	return c, ok
}

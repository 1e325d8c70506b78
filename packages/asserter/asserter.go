package asserter

import (
	"sort"
	"sync"

	"github.com/microbus-io/errors"
	"github.com/stretchr/testify/assert"
)

// Asserter runs named assertions. It returns true when the assertion holds;
// failures are reported to the underlying test.
type Asserter interface {
	Assert(name, description string, operands ...any) bool
}

// Func is an assertion implementation. Operands arrive in the order the
// assertion documents, expected values first and actual value last.
type Func func(t assert.TestingT, operands []any, msgAndArgs ...any) bool

type entry struct {
	arity int
	fn    Func
}

type tHelper interface {
	Helper()
}

// Testify is the default Asserter, backed by testify's assert package.
type Testify struct {
	t     assert.TestingT
	mu    sync.RWMutex
	funcs map[string]entry
}

// New returns an Asserter reporting failures to t.
func New(t assert.TestingT) *Testify {
	a := &Testify{
		t:     t,
		funcs: make(map[string]entry, len(builtins)),
	}
	for name, e := range builtins {
		a.funcs[name] = e
	}
	return a
}

// Register adds or replaces a named assertion taking arity operands.
func (a *Testify) Register(name string, arity int, fn Func) *Testify {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.funcs[name] = entry{arity: arity, fn: fn}
	return a
}

// Has reports whether an assertion name is registered.
func (a *Testify) Has(name string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.funcs[name]
	return ok
}

// Names returns the registered assertion names in sorted order.
func (a *Testify) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.funcs))
	for name := range a.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Assert runs the named assertion.
func (a *Testify) Assert(name, description string, operands ...any) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	a.mu.RLock()
	e, ok := a.funcs[name]
	a.mu.RUnlock()

	msgAndArgs := messages(description)
	if !ok {
		return assert.Fail(a.t, errors.New("'%s'", name, ErrUnsupportedAssertion).Error(), msgAndArgs...)
	}
	if len(operands) != e.arity {
		return assert.Fail(a.t, errors.New("%s expects %d, got %d", name, e.arity, len(operands), ErrOperandCount).Error(), msgAndArgs...)
	}
	return e.fn(a.t, operands, msgAndArgs...)
}

// Names returns the names of the built-in assertions in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func messages(description string) []any {
	if description == "" {
		return nil
	}
	return []any{description}
}

package verify

import (
	"github.com/abdul-hamid-achik/verify/packages/asserter"
	"github.com/microbus-io/errors"
)

// TestingT is the part of testing.TB the builders use.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
	Helper()
	Logf(format string, args ...any)
}

// Option configures a builder.
type Option func(*state)

// WithDescription sets the message reported when an assertion fails.
func WithDescription(description string) Option {
	return func(s *state) {
		s.description = description
	}
}

// WithAsserter replaces the assertion backend.
func WithAsserter(a asserter.Asserter) Option {
	return func(s *state) {
		s.asserter = a
	}
}

// WithVocabulary gives the builder its own conjunction vocabulary instead of
// the process-wide one.
func WithVocabulary(v Vocabulary) Option {
	return func(s *state) {
		v = v.clone()
		s.vocabulary = &v
	}
}

// WithVerbose logs every dispatched assertion through t.Logf.
func WithVerbose(verbose bool) Option {
	return func(s *state) {
		s.verbose = verbose
	}
}

// state is what every builder shares: the subject, its description and the
// modifier set by the last conjunction.
type state struct {
	t           TestingT
	actual      any
	description string
	modifier    Modifier
	vocabulary  *Vocabulary
	asserter    asserter.Asserter
	verbose     bool
	ignoreCase  bool
}

func newState(t TestingT, actual any, opts []Option) state {
	s := state{
		t:       t,
		actual:  actual,
		verbose: defaultVerbose.Load(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.asserter == nil {
		s.asserter = asserter.New(t)
	}
	return s
}

// Modifier returns the modifier set by the last conjunction.
func (s *state) Modifier() Modifier {
	return s.modifier
}

// Description returns the failure description.
func (s *state) Description() string {
	return s.description
}

func (s *state) vocab() Vocabulary {
	if s.vocabulary != nil {
		return *s.vocabulary
	}
	return *vocabulary.Load()
}

// ready reports whether a modifier is set, failing the test otherwise.
func (s *state) ready(method string) bool {
	s.t.Helper()
	if s.modifier != Unset {
		return true
	}
	s.fail(errors.New("%s()", method, ErrMissingModifier, "method", method))
	return false
}

// choose picks the assertion matching the modifier.
func (s *state) choose(positive, negative string) string {
	if s.modifier == Negative {
		return negative
	}
	return positive
}

func (s *state) run(method, name string, operands ...any) {
	s.t.Helper()
	if s.verbose {
		s.t.Logf("verify: %s() with %s modifier -> %s", method, s.modifier, name)
	}
	s.asserter.Assert(name, s.description, operands...)
}

func (s *state) fail(err error) {
	s.t.Helper()
	s.t.Errorf("%v", err)
	s.t.FailNow()
}

// fluent carries the conjunction methods. It is embedded in every builder
// with the builder itself as V so chains keep their concrete type.
type fluent[V any] struct {
	st   *state
	self V
}

// Conjunction applies the named conjunction from the vocabulary and returns
// the same builder. It returns ErrUnknownMethod, and leaves the modifier
// untouched, when the name is in no list.
func (f fluent[V]) Conjunction(name string) (V, error) {
	next, ok := f.st.vocab().Resolve(f.st.modifier, name)
	if !ok {
		return f.self, errors.New("%s()", name, ErrUnknownMethod, "method", name)
	}
	f.st.modifier = next
	return f.self, nil
}

func (f fluent[V]) must(name string) V {
	f.st.t.Helper()
	v, err := f.Conjunction(name)
	if err != nil {
		f.st.fail(err)
	}
	return v
}

// Is sets the positive modifier.
func (f fluent[V]) Is() V {
	f.st.t.Helper()
	return f.must("is")
}

// IsNot sets the negative modifier.
func (f fluent[V]) IsNot() V {
	f.st.t.Helper()
	return f.must("isNot")
}

// Does sets the positive modifier.
func (f fluent[V]) Does() V {
	f.st.t.Helper()
	return f.must("does")
}

// DoesNot sets the negative modifier.
func (f fluent[V]) DoesNot() V {
	f.st.t.Helper()
	return f.must("doesNot")
}

// Has sets the positive modifier.
func (f fluent[V]) Has() V {
	f.st.t.Helper()
	return f.must("has")
}

// Will sets the positive modifier.
func (f fluent[V]) Will() V {
	f.st.t.Helper()
	return f.must("will")
}

// WillNot sets the negative modifier.
func (f fluent[V]) WillNot() V {
	f.st.t.Helper()
	return f.must("willNot")
}

// And keeps the modifier.
func (f fluent[V]) And() V {
	f.st.t.Helper()
	return f.must("and")
}

// Be keeps the modifier.
func (f fluent[V]) Be() V {
	f.st.t.Helper()
	return f.must("be")
}

// Have keeps the modifier.
func (f fluent[V]) Have() V {
	f.st.t.Helper()
	return f.must("have")
}

package verify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
)

// fakeT records failures. FailNow only sets a flag so a test can inspect
// what happened after the failing call.
type fakeT struct {
	errors []string
	logs   []string
	failed bool
}

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) FailNow() {
	f.failed = true
}

func (f *fakeT) Helper() {}

func (f *fakeT) Logf(format string, args ...any) {
	f.logs = append(f.logs, fmt.Sprintf(format, args...))
}

type mockAsserter struct {
	mock.Mock
}

func (m *mockAsserter) Assert(name, description string, operands ...any) bool {
	args := m.Called(name, description, operands)
	return args.Bool(0)
}

func newMockAsserter(t *testing.T) *mockAsserter {
	m := &mockAsserter{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// expect registers a single passing call of the named assertion.
func (m *mockAsserter) expect(name string, operands ...any) {
	m.On("Assert", name, "", operands).Return(true).Once()
}

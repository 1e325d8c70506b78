package verify

import (
	"testing"

	"github.com/abdul-hamid-achik/verify/packages/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjunction_ReturnsSameBuilder(t *testing.T) {
	ft := &fakeT{}
	v := That(ft, 42)

	for _, name := range []string{"is", "isNot", "does", "doesNot", "has", "will", "willNot", "and", "be", "have"} {
		got, err := v.Conjunction(name)
		require.NoError(t, err, name)
		assert.Same(t, v, got, name)
	}
	assert.Empty(t, ft.errors)
}

func TestConjunction_FreshBuilder(t *testing.T) {
	vocab := DefaultVocabulary()
	groups := []struct {
		names []string
		want  Modifier
	}{
		{vocab.Positive, Positive},
		{vocab.Negative, Negative},
		{vocab.Neutral, Unset},
	}

	for _, group := range groups {
		for _, name := range group.names {
			t.Run(name, func(t *testing.T) {
				v := That(&fakeT{}, "x")
				got, err := v.Conjunction(name)
				require.NoError(t, err)
				assert.Same(t, v, got)
				assert.Equal(t, group.want, v.Modifier())
			})
		}
	}
}

func TestConjunction_Modifier(t *testing.T) {
	tests := []struct {
		name  string
		chain []string
		want  Modifier
	}{
		{"fresh builder", nil, Unset},
		{"positive", []string{"is"}, Positive},
		{"negative", []string{"isNot"}, Negative},
		{"neutral on fresh builder", []string{"and"}, Unset},
		{"neutral keeps positive", []string{"does", "have"}, Positive},
		{"neutral keeps negative", []string{"willNot", "be"}, Negative},
		{"last polar wins", []string{"is", "and", "isNot"}, Negative},
		{"negative then positive", []string{"doesNot", "has"}, Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := That(&fakeT{}, "x")
			for _, name := range tt.chain {
				_, err := v.Conjunction(name)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, v.Modifier())
		})
	}
}

func TestConjunction_NamedMethods(t *testing.T) {
	v := That(&fakeT{}, "x")

	assert.Same(t, v, v.Is())
	assert.Equal(t, Positive, v.Modifier())
	assert.Same(t, v, v.And().Be())
	assert.Equal(t, Positive, v.Modifier())
	assert.Same(t, v, v.WillNot())
	assert.Equal(t, Negative, v.Modifier())
	assert.Same(t, v, v.Have())
	assert.Equal(t, Negative, v.Modifier())
	assert.Same(t, v, v.Will())
	assert.Equal(t, Positive, v.Modifier())
	assert.Same(t, v, v.DoesNot())
	assert.Equal(t, Negative, v.Modifier())
	assert.Same(t, v, v.Does())
	assert.Equal(t, Positive, v.Modifier())
	assert.Same(t, v, v.IsNot())
	assert.Equal(t, Negative, v.Modifier())
	assert.Same(t, v, v.Has())
	assert.Equal(t, Positive, v.Modifier())
}

func TestConjunction_UnknownMethod(t *testing.T) {
	ft := &fakeT{}
	v := That(ft, "x").Is()

	got, err := v.Conjunction("isnt")

	require.ErrorIs(t, err, ErrUnknownMethod)
	assert.Contains(t, err.Error(), "isnt()")
	assert.Same(t, v, got)
	assert.Equal(t, Positive, v.Modifier(), "modifier must be untouched")
	assert.Empty(t, ft.errors, "Conjunction reports through its error")
}

func TestConjunction_NamedMethodOutsideVocabulary(t *testing.T) {
	ft := &fakeT{}
	v := That(ft, "x", WithVocabulary(Vocabulary{
		Positive: []string{"should"},
		Negative: []string{"shouldNot"},
	}))

	v.Is()

	assert.True(t, ft.failed)
	require.Len(t, ft.errors, 1)
	assert.Contains(t, ft.errors[0], "is(): unknown method")
	assert.Equal(t, Unset, v.Modifier())
}

func TestWithVocabulary(t *testing.T) {
	vocab := Vocabulary{
		Positive: []string{"should"},
		Negative: []string{"shouldNot"},
		Neutral:  []string{"also"},
	}
	v := That(&fakeT{}, 1, WithVocabulary(vocab))

	_, err := v.Conjunction("should")
	require.NoError(t, err)
	assert.Equal(t, Positive, v.Modifier())

	_, err = v.Conjunction("also")
	require.NoError(t, err)
	assert.Equal(t, Positive, v.Modifier())

	_, err = v.Conjunction("shouldNot")
	require.NoError(t, err)
	assert.Equal(t, Negative, v.Modifier())

	_, err = v.Conjunction("is")
	assert.ErrorIs(t, err, ErrUnknownMethod)

	vocab.Positive[0] = "mutated"
	_, err = v.Conjunction("should")
	assert.NoError(t, err, "builder keeps its own copy")
}

func TestVocabulary_Resolve(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		current Modifier
		name    string
		want    Modifier
		ok      bool
	}{
		{Unset, "is", Positive, true},
		{Negative, "will", Positive, true},
		{Unset, "doesNot", Negative, true},
		{Positive, "and", Positive, true},
		{Negative, "be", Negative, true},
		{Unset, "have", Unset, true},
		{Positive, "nope", Positive, false},
		{Positive, "Is", Positive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := vocab.Resolve(tt.current, tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModifier_String(t *testing.T) {
	assert.Equal(t, "unset", Unset.String())
	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "negative", Negative.String())
}

func TestSetVocabulary(t *testing.T) {
	saved := CurrentVocabulary()
	t.Cleanup(func() { SetVocabulary(saved) })

	SetVocabulary(Vocabulary{Positive: []string{"must"}, Negative: []string{"mustNot"}})

	v := That(&fakeT{}, 1)
	_, err := v.Conjunction("must")
	require.NoError(t, err)
	assert.Equal(t, Positive, v.Modifier())
	_, err = v.Conjunction("is")
	assert.ErrorIs(t, err, ErrUnknownMethod)

	current := CurrentVocabulary()
	current.Positive[0] = "changed"
	assert.Equal(t, []string{"must"}, CurrentVocabulary().Positive)
}

func TestConfigure(t *testing.T) {
	saved := CurrentVocabulary()
	t.Cleanup(func() {
		SetVocabulary(saved)
		defaultVerbose.Store(false)
	})

	cfg := config.DefaultConfig()
	cfg.Conjunctions.Positive = append(cfg.Conjunctions.Positive, "should")
	cfg.Verbose = config.BoolPtr(true)
	require.NoError(t, Configure(cfg))

	ft := &fakeT{}
	m := newMockAsserter(t)
	m.expect("True", true)

	v := That(ft, true, WithAsserter(m))
	_, err := v.Conjunction("should")
	require.NoError(t, err)
	v.True()

	require.Len(t, ft.logs, 1)
	assert.Contains(t, ft.logs[0], "True() with positive modifier -> True")
}

func TestConfigure_Invalid(t *testing.T) {
	saved := CurrentVocabulary()
	t.Cleanup(func() { SetVocabulary(saved) })

	cfg := config.DefaultConfig()
	cfg.Conjunctions.Neutral = append(cfg.Conjunctions.Neutral, "is")

	err := Configure(cfg)

	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, saved, CurrentVocabulary())
}

func TestConfigure_Nil(t *testing.T) {
	saved := CurrentVocabulary()

	err := Configure(nil)

	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, saved, CurrentVocabulary())
}

func TestDescription(t *testing.T) {
	m := newMockAsserter(t)
	m.On("Assert", "Equal", "answers line up", []any{42, 42}).Return(true).Once()

	v := That(&fakeT{}, 42, WithAsserter(m), WithDescription("answers line up"))
	v.Is().SameAs(42)

	assert.Equal(t, "answers line up", v.Description())
}

func TestWithVerbose(t *testing.T) {
	ft := &fakeT{}
	m := newMockAsserter(t)
	m.expect("NotNil", nil)

	That(ft, nil, WithAsserter(m), WithVerbose(true)).IsNot().Nil()

	assert.Equal(t, []string{"verify: Nil() with negative modifier -> NotNil"}, ft.logs)
}

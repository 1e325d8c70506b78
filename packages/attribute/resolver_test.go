package attribute_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/verify/packages/attribute"
	"github.com/microbus-io/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	parentClass = attribute.ClassName(exampleParent{})
	childClass  = attribute.ClassName(ExampleChild{})
)

func mustRegisterStubs() {
	attribute.MustRegister(exampleParent{}, attribute.Statics{
		"parentStaticPublic":  &parentStaticPublic,
		"parentStaticPrivate": &parentStaticPrivate,
		"shared":              &parentSharedStatic,
	})
	attribute.MustRegister(&ExampleChild{}, attribute.Statics{
		"childStaticPrivate": &childStaticPrivate,
		"shared":             &sharedStatic,
	})
}

func TestResolve_ObjectAttributes(t *testing.T) {
	child := newExampleChild()

	tests := []struct {
		name     string
		attr     string
		expected any
	}{
		{"child public", "ChildPublic", "child public property"},
		{"child private", "childPrivate", "child private property"},
		{"parent public", "ParentPublic", "parent public property"},
		{"parent protected", "parentProtected", "parent protected property"},
		{"parent private", "parentPrivate", "parent private property"},
		{"embedded struct", "exampleParent", child.exampleParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := attribute.Resolve(child, tt.attr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolve_MostDerivedWins(t *testing.T) {
	child := newExampleChild()
	before := *child

	got, err := attribute.Resolve(child, "shadowed")
	require.NoError(t, err)
	assert.Equal(t, "child shadowed property", got)

	field, ok := reflect.TypeOf(*child).FieldByName("shadowed")
	require.True(t, ok)
	assert.False(t, field.IsExported())
	assert.Equal(t, before, *child)
}

func TestResolve_ObjectByValue(t *testing.T) {
	got, err := attribute.Resolve(*newExampleChild(), "parentPrivate")
	require.NoError(t, err)
	assert.Equal(t, "parent private property", got)
}

func TestResolve_EmbeddedPointer(t *testing.T) {
	type wrapper struct {
		*ExampleChild
		own int
	}

	got, err := attribute.Resolve(wrapper{ExampleChild: newExampleChild(), own: 3}, "childPrivate")
	require.NoError(t, err)
	assert.Equal(t, "child private property", got)

	_, err = attribute.Resolve(wrapper{own: 3}, "childPrivate")
	assert.True(t, errors.Is(err, attribute.ErrAttributeNotFound))
}

func TestResolve_Map(t *testing.T) {
	subject := map[string]int{"answer": 42}

	got, err := attribute.Resolve(subject, "answer")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = attribute.Resolve(subject, "question")
	assert.True(t, errors.Is(err, attribute.ErrAttributeNotFound))
}

func TestResolve_StaticInheritedFromParent(t *testing.T) {
	got, err := attribute.Resolve(childClass, "parentStaticPrivate")
	require.NoError(t, err)
	assert.Equal(t, "parent static private property", got)

	got, err = attribute.Resolve(childClass, "childStaticPrivate")
	require.NoError(t, err)
	assert.Equal(t, "child static private property", got)
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "github.com/abdul-hamid-achik/verify/packages/attribute_test.ExampleChild", childClass)
	assert.Equal(t, childClass, attribute.ClassName(&ExampleChild{}))
	assert.Equal(t, "", attribute.ClassName(nil))
}

func TestRegisterAs_Alias(t *testing.T) {
	type aliased struct {
		ExampleChild
	}

	require.NoError(t, attribute.RegisterAs(`Stub\Aliased`, aliased{}, nil))
	t.Cleanup(func() { attribute.Unregister(`Stub\Aliased`) })

	got, err := attribute.Resolve(`Stub\Aliased`, "parentStaticPrivate")
	require.NoError(t, err)
	assert.Equal(t, "parent static private property", got)
}

func TestResolve_StaticReadsCurrentValue(t *testing.T) {
	old := parentStaticPublic
	t.Cleanup(func() { parentStaticPublic = old })

	parentStaticPublic = "changed"
	got, err := attribute.Resolve(parentClass, "parentStaticPublic")
	require.NoError(t, err)
	assert.Equal(t, "changed", got)
}

func TestResolve_StaticMostDerivedWins(t *testing.T) {
	got, err := attribute.Resolve(childClass, "shared")
	require.NoError(t, err)
	assert.Equal(t, "child shared static", got)

	got, err = attribute.Resolve(parentClass, "shared")
	require.NoError(t, err)
	assert.Equal(t, "parent shared static", got)
}

func TestResolve_UnknownClass(t *testing.T) {
	_, err := attribute.Resolve(`No\Such\Class`, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, attribute.ErrInvalidSubject))
	assert.Contains(t, err.Error(), `No\Such\Class`)
}

func TestResolve_AttributeNotFound(t *testing.T) {
	_, err := attribute.Resolve(newExampleChild(), "nonexistent_attr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, attribute.ErrAttributeNotFound))
	assert.Contains(t, err.Error(), "nonexistent_attr")
	assert.Contains(t, err.Error(), "object")

	_, err = attribute.Resolve(childClass, "nonexistent_attr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, attribute.ErrAttributeNotFound))
	assert.Contains(t, err.Error(), "nonexistent_attr")
	assert.Contains(t, err.Error(), "static")
}

func TestResolve_InvalidSubject(t *testing.T) {
	var nilChild *ExampleChild
	subjects := []any{nil, 42, 3.14, []string{"a"}, nilChild, map[int]string{1: "a"}}

	for _, subject := range subjects {
		_, err := attribute.Resolve(subject, "x")
		assert.True(t, errors.Is(err, attribute.ErrInvalidSubject), "subject %#v", subject)
	}
}

func TestHas(t *testing.T) {
	ok, err := attribute.Has(newExampleChild(), "parentPrivate")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = attribute.Has(newExampleChild(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = attribute.Has(childClass, "childPrivate")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = attribute.Has(childClass, "parentStaticPublic")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = attribute.Has(`No\Such\Class`, "x")
	assert.True(t, errors.Is(err, attribute.ErrInvalidSubject))
}

func TestHasStatic(t *testing.T) {
	ok, err := attribute.HasStatic(childClass, "parentStaticPrivate")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = attribute.HasStatic(childClass, "childPrivate")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegister_Errors(t *testing.T) {
	err := attribute.RegisterAs("bad", 42, nil)
	assert.True(t, errors.Is(err, attribute.ErrInvalidSubject))

	value := "x"
	err = attribute.RegisterAs("bad", exampleParent{}, attribute.Statics{"value": value})
	assert.True(t, errors.Is(err, attribute.ErrInvalidStatic))
	assert.False(t, attribute.ClassExists("bad"))
}

func TestRegistry_Lifecycle(t *testing.T) {
	type temporary struct{}

	require.NoError(t, attribute.RegisterAs("tmp.Temporary", temporary{}, nil))
	assert.True(t, attribute.ClassExists("tmp.Temporary"))
	assert.Contains(t, attribute.Classes(), "tmp.Temporary")

	attribute.Unregister("tmp.Temporary")
	assert.False(t, attribute.ClassExists("tmp.Temporary"))
}

type linkedNode struct {
	*linkedNode
	value int
}

var linkedNodeLimit = 3

// resolveWithin fails the test instead of hanging when a lookup does not
// return.
func resolveWithin(t *testing.T, subject any, name string) (any, error) {
	t.Helper()
	type result struct {
		value any
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := attribute.Resolve(subject, name)
		done <- result{value, err}
	}()
	select {
	case r := <-done:
		return r.value, r.err
	case <-time.After(2 * time.Second):
		t.Fatalf("resolving %q did not return", name)
		return nil, nil
	}
}

func TestResolve_SelfEmbeddingType(t *testing.T) {
	class := attribute.ClassName(linkedNode{})
	require.NoError(t, attribute.Register(linkedNode{}, attribute.Statics{"limit": &linkedNodeLimit}))
	t.Cleanup(func() { attribute.Unregister(class) })

	node := &linkedNode{value: 7}
	node.linkedNode = node

	tests := []struct {
		name    string
		subject any
		attr    string
		want    any
		wantErr error
	}{
		{"static found", class, "limit", 3, nil},
		{"static missing", class, "missing", nil, attribute.ErrAttributeNotFound},
		{"object found", node, "value", 7, nil},
		{"object missing", node, "missing", nil, attribute.ErrAttributeNotFound},
		{"object by value missing", linkedNode{}, "missing", nil, attribute.ErrAttributeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveWithin(t, tt.subject, tt.attr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	has, err := attribute.Has(class, "missing")
	require.NoError(t, err)
	assert.False(t, has)
}

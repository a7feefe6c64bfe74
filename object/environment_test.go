/*
File    : quill/object/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_GetSetLocal(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", &Integer{Value: 5})

	val, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &Integer{Value: 5}, val)

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_EnclosedLookupFallsThrough(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 10})

	inner := NewEnclosedEnvironment(outer)
	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &Integer{Value: 10}, val)
}

func TestEnvironment_SetNeverWritesOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("x", &Integer{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")

	assert.Equal(t, int64(2), innerVal.(*Integer).Value)
	assert.Equal(t, int64(1), outerVal.(*Integer).Value, "Set must never mutate an enclosing scope's binding")
}

func TestEnvironment_ShadowingInInnerDoesNotLeak(t *testing.T) {
	outer := NewEnvironment()
	inner := NewEnclosedEnvironment(outer)
	inner.Set("y", &Integer{Value: 99})

	_, ok := outer.Get("y")
	assert.False(t, ok, "a binding made in a child environment must not be visible from the parent")
}

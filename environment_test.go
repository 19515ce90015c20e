package karou

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentChain(t *testing.T) {
	globals := NewEnvironment(nil)
	globals.Define("x", Number(1))
	globals.Define("y", Text("outer"))

	inner := NewEnvironment(globals)
	inner.Define("x", Number(2))

	v, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, Number(2), v)

	v, ok = inner.Get("y")
	require.True(t, ok)
	assert.Equal(t, Text("outer"), v)

	v, ok = globals.Get("x")
	require.True(t, ok)
	assert.Equal(t, Number(1), v, "shadowing must not touch the outer frame")

	_, ok = inner.Get("missing")
	assert.False(t, ok)
}

func TestStack(t *testing.T) {
	var s Stack[int]

	_, ok := s.Top()
	assert.False(t, ok)
	_, ok = s.Pop()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Len())

	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, 2, top)

	top, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, top)
	assert.Equal(t, 1, s.Len())
}

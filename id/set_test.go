package id_test

import (
	"testing"

	"github.com/plus3/entid/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAddHasDelete(t *testing.T) {
	s := id.NewSet[string]("a", "b")

	assert.True(t, s.Has("a"))
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, 2, s.Len())

	s.Delete("a")
	assert.False(t, s.Has("a"))
	assert.Equal(t, 1, s.Len())
}

func TestSetAddIsIdempotent(t *testing.T) {
	s := id.NewSet[int]()
	s.Add(1)
	s.Add(1)
	assert.Equal(t, 1, s.Len())
}

func TestSetPopSingleton(t *testing.T) {
	s := id.NewSet("only")

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "only", v)
	assert.Equal(t, 0, s.Len())
}

func TestSetPopEmpty(t *testing.T) {
	s := id.NewSet[string]()

	_, err := s.Pop()
	assert.ErrorIs(t, err, id.ErrEmptyCollection)
}

func TestSetPopDrains(t *testing.T) {
	s := id.NewSet(1, 2, 3, 4, 5)

	popped := id.NewSet[int]()
	for i := 0; i < 5; i++ {
		v, err := s.Pop()
		require.NoError(t, err)
		require.False(t, popped.Has(v))
		popped.Add(v)
	}

	assert.Equal(t, 0, s.Len())
	_, err := s.Pop()
	assert.ErrorIs(t, err, id.ErrEmptyCollection)
}

func TestSetOfIds(t *testing.T) {
	src := id.NewSource(21)
	selected := id.NewSet[id.Id[Unit]]()

	a := id.RandomFrom[Unit](src)
	b := id.RandomFrom[Unit](src)
	selected.Add(a)
	selected.Add(b)

	assert.True(t, selected.Has(a))
	v, err := selected.Pop()
	require.NoError(t, err)
	assert.True(t, v == a || v == b)
	assert.Equal(t, 1, selected.Len())
}

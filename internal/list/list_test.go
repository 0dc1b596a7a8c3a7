package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushFrontOrdersNewestFirst(t *testing.T) {
	l := New()
	l.PushFront("one")
	l.PushFront("two")
	l.PushFront("three")
	require.Equal(t, 3, l.Count())
	assert.Equal(t, "three", l.First().Value)
	assert.Equal(t, "two", l.First().Next().Value)
	assert.Equal(t, "one", l.First().Next().Next().Value)
}

func TestSelectClampsToLast(t *testing.T) {
	l := New()
	l.PushFront("a")
	l.PushFront("b")
	node, idx := l.Select(99)
	require.NotNil(t, node)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "a", node.Value)
}

func TestSelectOnEmptyList(t *testing.T) {
	l := New()
	node, idx := l.Select(0)
	assert.Nil(t, node)
	assert.Equal(t, 0, idx)
}

func TestRemoveHead(t *testing.T) {
	l := New()
	l.PushFront("a")
	l.PushFront("b")
	l.Remove(l.First())
	require.Equal(t, 1, l.Count())
	assert.Equal(t, "a", l.First().Value)
}

func TestRemoveMiddle(t *testing.T) {
	l := New()
	l.PushFront("a")
	l.PushFront("b")
	l.PushFront("c")
	mid := l.First().Next()
	l.Remove(mid)
	require.Equal(t, 2, l.Count())
	assert.Equal(t, "c", l.First().Value)
	assert.Equal(t, "a", l.First().Next().Value)
}

package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/ownly"
)

func intLess(a, b int) bool { return a < b }

func TestHeap(t *testing.T) {
	h := NewHeap(intLess, 5, 1, 3)
	h.Push(2)

	top, ok := h.Peek()
	assert.True(t, ok)
	assert.EqualValues(t, 1, top)

	var drained []int
	for {
		item, ok := h.Pop()
		if !ok {
			break
		}
		drained = append(drained, item)
	}
	assert.EqualValues(t, []int{1, 2, 3, 5}, drained)

	_, ok = NewHeap(intLess).Pop()
	assert.False(t, ok)
}

func TestHeapFunc_reheapifies(t *testing.T) {
	//negation inverts relative order, so the result must be re-heapified
	in := NewHeap(intLess, 5, 1, 3)
	out := HeapFunc(in, intLess, func(v int) int { return -v })

	var drained []int
	for {
		item, ok := out.Pop()
		if !ok {
			break
		}
		drained = append(drained, item)
	}
	assert.EqualValues(t, []int{-5, -3, -1}, drained)
	assert.Nil(t, HeapFunc[int, int](nil, intLess, nil))
}

func TestHeapFunc_ownedElements(t *testing.T) {
	byLen := func(a, b ownly.Cow) bool { return a.Len() < b.Len() }
	in := NewHeap(byLen, ownly.BorrowedString("ccc"), ownly.BorrowedString("a"), ownly.BorrowedString("bb"))

	out := HeapFunc(in, byLen, ownly.Cow.ToOwned)
	assert.EqualValues(t, in.Len(), out.Len())
	for {
		item, ok := out.Pop()
		if !ok {
			break
		}
		assert.True(t, item.IsOwned())
	}
}

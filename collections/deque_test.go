package collections

import (
	"testing"

	"github.com/gammazero/deque"
	"github.com/stretchr/testify/assert"

	"github.com/viant/ownly"
)

func TestDeque(t *testing.T) {
	in := deque.New[ownly.Cow]()
	in.PushBack(ownly.BorrowedString("b"))
	in.PushBack(ownly.Owned("c"))
	in.PushFront(ownly.BorrowedString("a"))

	out := Deque[ownly.Cow](in)
	assert.EqualValues(t, 3, out.Len())
	for i, expect := range []string{"a", "b", "c"} {
		assert.True(t, out.At(i).IsOwned())
		assert.EqualValues(t, expect, out.At(i).String())
	}
	assert.Nil(t, Deque[ownly.Cow, ownly.Cow](nil))
}

func TestDequeInto_reusesBuffer(t *testing.T) {
	in := deque.New[ownly.Cow]()
	in.PushBack(ownly.BorrowedString("a"))

	out := DequeInto(in)
	assert.Same(t, in, out)
	assert.True(t, out.At(0).IsOwned())
}

func TestDequeFunc(t *testing.T) {
	in := deque.New[int]()
	in.PushBack(1)
	in.PushBack(2)
	out := DequeFunc(in, ownly.Identity[int])
	assert.EqualValues(t, 1, out.Front())
	assert.EqualValues(t, 2, out.Back())
}

package ownly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCowBytes_ToOwned(t *testing.T) {
	buf := []byte("content")
	var testCases = []struct {
		description string
		cow         CowBytes
	}{
		{
			description: "borrowed buffer",
			cow:         BorrowedBytes(buf),
		},
		{
			description: "owned buffer still copies on the non-consuming path",
			cow:         OwnedBytes(buf),
		},
	}

	for _, testCase := range testCases {
		owned := testCase.cow.ToOwned()
		assert.True(t, owned.IsOwned(), testCase.description)
		assert.EqualValues(t, "content", string(owned.Bytes()), testCase.description)
		assert.NotSame(t, &buf[0], &owned.Bytes()[0], testCase.description)
	}
}

func TestCowBytes_IntoOwned(t *testing.T) {
	buf := []byte("content")

	owned := OwnedBytes(buf).IntoOwned()
	assert.Same(t, &buf[0], &owned.Bytes()[0], "owned storage is transferred, not copied")

	borrowed := BorrowedBytes(buf).IntoOwned()
	assert.True(t, borrowed.IsOwned())
	assert.NotSame(t, &buf[0], &borrowed.Bytes()[0], "borrowed storage is copied")
}

func TestBytes(t *testing.T) {
	assert.Nil(t, Bytes(nil))
	src := []byte("abc")
	ret := Bytes(src)
	assert.EqualValues(t, src, ret)
	assert.NotSame(t, &src[0], &ret[0])
}

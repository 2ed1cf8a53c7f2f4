package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/ownly"
)

func TestMap(t *testing.T) {
	buf := []byte("value")
	in := map[string]ownly.Cow{
		"k1": ownly.Borrowed(buf),
		"k2": ownly.Owned("other"),
	}

	out := Map[string, ownly.Cow](in)
	copy(buf, "?????")

	assert.EqualValues(t, 2, len(out))
	assert.EqualValues(t, "value", out["k1"].String())
	assert.EqualValues(t, "other", out["k2"].String())
	for _, cow := range out {
		assert.True(t, cow.IsOwned())
	}
	assert.Nil(t, Map[string, ownly.Cow, ownly.Cow](nil))
}

func TestMapInto_reusesMap(t *testing.T) {
	in := map[string]ownly.Cow{"k": ownly.Borrowed([]byte("v"))}
	out := MapInto(in)
	out["extra"] = ownly.Owned("e")
	assert.EqualValues(t, 2, len(in), "input map storage is reused")
	assert.True(t, in["k"].IsOwned())
}

func TestMapFunc(t *testing.T) {
	//a map from text keys to sequences of copy-on-write values
	in := map[string][]ownly.Cow{
		"k1": {ownly.BorrowedString("a"), ownly.BorrowedString("b")},
		"k2": nil,
	}
	out := MapFunc(in, ownly.Identity[string], func(seq []ownly.Cow) []ownly.Cow {
		return ownly.Slice[ownly.Cow](seq)
	})
	assert.EqualValues(t, 2, len(out))
	assert.EqualValues(t, "a", out["k1"][0].String())
	assert.EqualValues(t, "b", out["k1"][1].String())
	assert.True(t, out["k1"][0].IsOwned())
	assert.Nil(t, out["k2"])
}

func TestMapFunc_collidingKeysCollapse(t *testing.T) {
	in := map[ownly.Cow]int{
		ownly.BorrowedString("x"): 1,
		ownly.Owned("x"):          2,
	}
	out := MapFunc(in, ownly.Cow.ToOwned, ownly.Identity[int])
	assert.EqualValues(t, 1, len(out), "keys equal after conversion collapse to one entry")
	assert.Contains(t, []int{1, 2}, out[ownly.Owned("x")])
}

func TestSetFunc(t *testing.T) {
	in := NewSet(ownly.BorrowedString("x"), ownly.Owned("x"), ownly.Owned("y"))
	out := SetFunc(in, ownly.Cow.ToOwned)
	assert.EqualValues(t, 2, len(out), "distinct inputs converting to equal outputs deduplicate")
	assert.True(t, out.Has(ownly.Owned("x")))
	assert.True(t, out.Has(ownly.Owned("y")))
	assert.False(t, out.Has(ownly.BorrowedString("x")))
	assert.Nil(t, SetFunc[int, int](nil, ownly.Identity[int]))
}

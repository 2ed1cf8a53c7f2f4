package collections

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/viant/ownly"
)

// Ordered returns an owned ordered map converting each element with the
// non-consuming capability, preserving entry order; nil in, nil out.
func Ordered[K comparable, O any, V ownly.ToOwned[O]](in *orderedmap.OrderedMap[K, V]) *orderedmap.OrderedMap[K, O] {
	if in == nil {
		return nil
	}
	ret := orderedmap.New[K, O](in.Len())
	for pair := in.Oldest(); pair != nil; pair = pair.Next() {
		ret.Set(pair.Key, pair.Value.ToOwned())
	}
	return ret
}

// OrderedFunc returns an owned ordered map converting keys and elements with
// the supplied functions. The result follows its own ordering rule, insertion
// order of conversion, which equals the input order whenever the key
// conversion preserves distinctness; colliding keys keep their first position
// and the last written element. With struct{} elements and Identity this also
// serves ordered sets.
func OrderedFunc[K, KO comparable, V, VO any](in *orderedmap.OrderedMap[K, V], key func(K) KO, elem func(V) VO) *orderedmap.OrderedMap[KO, VO] {
	if in == nil {
		return nil
	}
	ret := orderedmap.New[KO, VO](in.Len())
	for pair := in.Oldest(); pair != nil; pair = pair.Next() {
		ret.Set(key(pair.Key), elem(pair.Value))
	}
	return ret
}

package collections

import (
	"container/heap"
)

// Heap is a binary heap ordered by a caller supplied less function.
type Heap[T any] struct {
	d heapData[T]
}

// NewHeap returns a heap holding the supplied items, established in
// heap order.
func NewHeap[T any](less func(a, b T) bool, items ...T) *Heap[T] {
	ret := &Heap[T]{d: heapData[T]{less: less}}
	if len(items) > 0 {
		ret.d.items = make([]T, len(items))
		copy(ret.d.items, items)
		heap.Init(&ret.d)
	}
	return ret
}

// Push adds an item.
func (h *Heap[T]) Push(item T) {
	heap.Push(&h.d, item)
}

// Pop removes and returns the minimum item under the heap ordering.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if len(h.d.items) == 0 {
		return zero, false
	}
	return heap.Pop(&h.d).(T), true
}

// Peek returns the minimum item without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	var zero T
	if len(h.d.items) == 0 {
		return zero, false
	}
	return h.d.items[0], true
}

// Len returns the number of items.
func (h *Heap[T]) Len() int {
	return len(h.d.items)
}

// Items returns the underlying storage in heap order, not sorted order.
func (h *Heap[T]) Items() []T {
	return h.d.items
}

// HeapFunc returns an owned heap converting each element with fn and
// re-establishing the heap property under the result ordering; conversion may
// change relative order between elements, so the result is always
// re-heapified. Nil in, nil out.
func HeapFunc[T, O any](in *Heap[T], less func(a, b O) bool, fn func(T) O) *Heap[O] {
	if in == nil {
		return nil
	}
	items := make([]O, len(in.d.items))
	for i, item := range in.d.items {
		items[i] = fn(item)
	}
	ret := &Heap[O]{d: heapData[O]{less: less, items: items}}
	heap.Init(&ret.d)
	return ret
}

// heapData implements heap.Interface over a generic slice.
type heapData[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *heapData[T]) Len() int {
	return len(h.items)
}

func (h *heapData[T]) Less(i, j int) bool {
	return h.less(h.items[i], h.items[j])
}

func (h *heapData[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *heapData[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *heapData[T]) Pop() any {
	last := len(h.items) - 1
	item := h.items[last]
	h.items = h.items[:last]
	return item
}

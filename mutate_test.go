package stablevec

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestPushEraseInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stablevec")
	defer teardown()

	v := New[int]()
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	require.Equal(t, []int{1, 2, 3}, v.ToSlice())

	it := v.Erase(v.CBegin().Add(1))
	require.Equal(t, []int{1, 3}, v.ToSlice())
	require.Equal(t, 3, it.Value())

	it = v.Insert(v.CBegin().Add(1), 5)
	require.Equal(t, []int{1, 5, 3}, v.ToSlice())
	require.Equal(t, 5, it.Value())
	require.Equal(t, 1, it.Index())
	require.NoError(t, v.Check())
}

func TestResizeScenario(t *testing.T) {
	v := FromSlice([]int{1, 2})
	v.ResizeFill(5, 0)
	require.Equal(t, []int{1, 2, 0, 0, 0}, v.ToSlice())
	v.Resize(1)
	require.Equal(t, []int{1}, v.ToSlice())
	v.Resize(3)
	require.Equal(t, []int{1, 0, 0}, v.ToSlice())
	v.Resize(0)
	require.True(t, v.Empty())
	require.NoError(t, v.Check())
}

func TestEraseLastReturnsEnd(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	it := v.Erase(v.CEnd().Prev())
	require.True(t, it.IsEnd())
	require.Equal(t, []int{1, 2}, v.ToSlice())
}

func TestEraseRange(t *testing.T) {
	v := FromSlice([]int{0, 1, 2, 3, 4, 5})
	keep := v.Begin().Add(4)
	p := keep.Ptr()
	gone := v.Begin().Add(2)
	it := v.EraseRange(v.CBegin().Add(1), v.CBegin().Add(4))
	require.Equal(t, []int{0, 4, 5}, v.ToSlice())
	require.Equal(t, 4, it.Value())
	require.True(t, it.Equal(keep))
	require.Equal(t, 1, keep.Index())
	require.Same(t, p, keep.Ptr())
	require.False(t, gone.Valid())
	require.NoError(t, v.Check())

	it = v.EraseRange(v.CBegin(), v.CBegin())
	require.Equal(t, 0, it.Value())
	require.Equal(t, 3, v.Len())

	it = v.EraseRange(v.CBegin(), v.CEnd())
	require.True(t, it.IsEnd())
	require.True(t, v.Empty())
	require.NoError(t, v.Check())
}

func TestInsertSliceAndN(t *testing.T) {
	v := FromSlice([]int{1, 5})
	it := v.InsertSlice(v.CBegin().Next(), 2, 3, 4)
	require.Equal(t, []int{1, 2, 3, 4, 5}, v.ToSlice())
	require.Equal(t, 2, it.Value())

	it = v.InsertN(v.CEnd(), 2, 9)
	require.Equal(t, []int{1, 2, 3, 4, 5, 9, 9}, v.ToSlice())
	require.Equal(t, 5, it.Index())

	pos := v.CBegin().Add(3)
	it = v.InsertSlice(pos)
	require.Equal(t, 3, it.Index())
	require.Equal(t, 4, it.Value())
	require.NoError(t, v.Check())
}

func TestInsertRangeFromItself(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stablevec")
	defer teardown()

	v := FromSlice([]string{"a", "b", "c"})
	it := v.InsertRange(v.CBegin().Next(), v.CBegin(), v.CEnd())
	require.Equal(t, []string{"a", "a", "b", "c", "b", "c"}, v.ToSlice())
	require.Equal(t, 1, it.Index())
	require.NoError(t, v.Check())

	w := FromSlice([]string{"x", "y"})
	v.InsertRange(v.CEnd(), w.CBegin(), w.CEnd())
	require.Equal(t, "y", v.Back())
	require.Equal(t, []string{"x", "y"}, w.ToSlice())
}

func TestInsertEraseRoundTrip(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4})
	for i := 0; i <= v.Len(); i++ {
		before := v.ToSlice()
		it := v.Insert(v.CBegin().Add(i), 42)
		v.Erase(it.Const())
		require.Equal(t, before, v.ToSlice(), "round trip at %d", i)
		require.NoError(t, v.Check())
	}
}

func TestInsertAtEraseAt(t *testing.T) {
	v := New[int]()
	v.InsertAt(0, 2)
	v.InsertAt(0, 1)
	v.InsertAt(2, 3)
	require.Equal(t, []int{1, 2, 3}, v.ToSlice())
	v.EraseAt(1)
	require.Equal(t, []int{1, 3}, v.ToSlice())
}

func TestAssignInvalidatesIterators(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	it := v.Begin()
	v.Assign(2, 7)
	require.Equal(t, []int{7, 7}, v.ToSlice())
	require.False(t, it.Valid())
	require.NoError(t, v.Check())

	v.AssignSlice([]int{4, 5, 6})
	require.Equal(t, []int{4, 5, 6}, v.ToSlice())
	require.NoError(t, v.Check())

	v.AssignRange(v.CBegin().Next(), v.CEnd())
	require.Equal(t, []int{5, 6}, v.ToSlice())
	require.NoError(t, v.Check())

	w := FromSlice([]int{8, 9, 10})
	v.AssignRange(w.CBegin(), w.CEnd())
	require.Equal(t, []int{8, 9, 10}, v.ToSlice())
	require.NoError(t, v.Check())
	require.NoError(t, w.Check())
}

func TestSwapExchangesContents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stablevec")
	defer teardown()

	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{9})
	itA := a.Begin().Next()
	pA := itA.Ptr()
	a.Swap(b)
	require.Equal(t, []int{9}, a.ToSlice())
	require.Equal(t, []int{1, 2, 3}, b.ToSlice())
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())

	// the iterator follows its element into b
	require.True(t, itA.Valid())
	require.Equal(t, 2, itA.Value())
	require.Same(t, pA, b.Ref(1))
	require.True(t, itA.Next().Next().IsEnd())
	b.Erase(itA.Const())
	require.Equal(t, []int{1, 3}, b.ToSlice())

	a.Swap(a)
	require.Equal(t, []int{9}, a.ToSlice())
}

func TestPopBackOnEmptyPanics(t *testing.T) {
	v := New[int]()
	require.Panics(t, func() { v.PopBack() })
}

func TestEraseEndPanics(t *testing.T) {
	v := FromSlice([]int{1})
	require.Panics(t, func() { v.Erase(v.CEnd()) })
}

func TestForeignIteratorPanics(t *testing.T) {
	v := FromSlice([]int{1})
	w := FromSlice([]int{2})
	require.Panics(t, func() { v.Insert(w.CBegin(), 3) })
}

package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsNone(t *testing.T) {
	var n Node
	assert.Equal(t, None, n.Kind())
	assert.True(t, n.IsNone())
	assert.Equal(t, 0, n.Size())
	assert.Equal(t, "", n.Value())
}

func TestKindIdempotence(t *testing.T) {
	var n Node
	n.SetValue("a")
	require.Equal(t, Scalar, n.Kind())
	n.SetValue("b")
	assert.Equal(t, Scalar, n.Kind())
	assert.Equal(t, "b", n.Value())

	n.PushBack().SetValue("x")
	require.Equal(t, Sequence, n.Kind())
	n.PushBack().SetValue("y")
	// Coercion to the same kind keeps contents.
	assert.Equal(t, 2, n.Size())

	n.Key("k").SetValue("v")
	require.Equal(t, Mapping, n.Kind())
	assert.Equal(t, 1, n.Size())
	n.Key("k2")
	assert.Equal(t, 2, n.Size())
}

func TestCoercionDiscardsContents(t *testing.T) {
	var n Node
	n.Key("a").SetValue("1")
	n.Key("b").SetValue("2")
	require.Equal(t, 2, n.Size())

	n.PushBack().SetValue("x")
	assert.Equal(t, Sequence, n.Kind())
	assert.Equal(t, 1, n.Size())

	n.SetValue("plain")
	assert.Equal(t, Scalar, n.Kind())
	assert.Equal(t, 0, n.Size())
}

func TestClear(t *testing.T) {
	var n Node
	n.Key("a").Key("b").SetValue("deep")
	n.Clear()
	assert.True(t, n.IsNone())
	assert.Equal(t, 0, n.Size())
}

func TestMapKeyUniqueness(t *testing.T) {
	var n Node
	first := n.Key("k")
	require.Equal(t, 1, n.Size())
	second := n.Key("k")
	assert.Equal(t, 1, n.Size())
	assert.Same(t, first, second)
}

func TestMapInsertionOrder(t *testing.T) {
	var n Node
	for _, k := range []string{"zulu", "alpha", "mike"} {
		n.Key(k)
	}
	var got []string
	for k := range n.Keys() {
		got = append(got, k)
	}
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, got)

	n.EraseKey("alpha")
	got = got[:0]
	for k := range n.Keys() {
		got = append(got, k)
	}
	assert.Equal(t, []string{"zulu", "mike"}, got)
}

func TestEraseKeyWrongKindIsNoop(t *testing.T) {
	var n Node
	n.SetValue("scalar")
	n.EraseKey("missing")
	assert.Equal(t, Scalar, n.Kind())
	assert.Equal(t, "scalar", n.Value())
}

func TestSequenceDensity(t *testing.T) {
	var n Node
	n.PushBack().SetValue("b")
	n.PushFront().SetValue("a")
	n.PushBack().SetValue("d")
	n.Insert(2).SetValue("c")
	require.Equal(t, 4, n.Size())

	for i, want := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, want, n.Index(i).Value(), "index %d", i)
	}

	n.EraseIndex(1)
	require.Equal(t, 3, n.Size())
	for i, want := range []string{"a", "c", "d"} {
		assert.Equal(t, want, n.Index(i).Value(), "index %d after erase", i)
	}
}

func TestInsertClampsIndex(t *testing.T) {
	var n Node
	n.PushBack().SetValue("a")
	n.Insert(99).SetValue("b")
	n.Insert(-1).SetValue("front")
	require.Equal(t, 3, n.Size())
	assert.Equal(t, "front", n.Index(0).Value())
	assert.Equal(t, "b", n.Index(2).Value())
}

func TestEraseIndexOutOfRangeIsNoop(t *testing.T) {
	var n Node
	n.PushBack().SetValue("a")
	n.EraseIndex(5)
	n.EraseIndex(-1)
	assert.Equal(t, 1, n.Size())
}

func TestIndexMissReturnsDetachedNone(t *testing.T) {
	var n Node
	n.PushBack().SetValue("a")
	miss := n.Index(7)
	require.NotNil(t, miss)
	assert.True(t, miss.IsNone())

	// Writing through the miss does not attach it to the tree.
	miss.SetValue("ghost")
	assert.Equal(t, 1, n.Size())
}

func TestIndexCoercesToSequence(t *testing.T) {
	var n Node
	n.Key("k").SetValue("v")
	miss := n.Index(0)
	assert.True(t, miss.IsNone())
	assert.Equal(t, Sequence, n.Kind())
	assert.Equal(t, 0, n.Size())
}

func TestCopyFromDeep(t *testing.T) {
	var src Node
	src.Key("list").PushBack().SetValue("one")
	src.Key("list").PushBack().SetValue("two")
	src.Key("name").SetValue("src")

	var dst Node
	dst.CopyFrom(&src)
	require.Equal(t, Mapping, dst.Kind())
	assert.Equal(t, "one", dst.Key("list").Index(0).Value())
	assert.Equal(t, "src", dst.Key("name").Value())

	// Mutating the copy leaves the source untouched.
	dst.Key("list").Index(0).SetValue("changed")
	assert.Equal(t, "one", src.Key("list").Index(0).Value())
}

func TestCopyFromSelfIsNoop(t *testing.T) {
	var n Node
	n.Key("a").SetValue("1")
	n.CopyFrom(&n)
	assert.Equal(t, "1", n.Key("a").Value())
}

func TestCopyFromNilClears(t *testing.T) {
	var n Node
	n.SetValue("x")
	n.CopyFrom(nil)
	assert.True(t, n.IsNone())
}

func TestAllIteration(t *testing.T) {
	var seq Node
	seq.PushBack().SetValue("a")
	seq.PushBack().SetValue("b")
	var keys []string
	var vals []string
	for k, c := range seq.All() {
		keys = append(keys, k)
		vals = append(vals, c.Value())
	}
	assert.Equal(t, []string{"", ""}, keys)
	assert.Equal(t, []string{"a", "b"}, vals)

	var m Node
	m.Key("x").SetValue("1")
	m.Key("y").SetValue("2")
	keys = keys[:0]
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"x", "y"}, keys)
}

func TestHasKey(t *testing.T) {
	var n Node
	assert.False(t, n.HasKey("a"))
	assert.True(t, n.IsNone(), "HasKey must not coerce")
	n.Key("a")
	assert.True(t, n.HasKey("a"))
	assert.False(t, n.HasKey("b"))
}

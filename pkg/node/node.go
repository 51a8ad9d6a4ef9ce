package node

// Kind identifies the shape of a Node.
type Kind int

const (
	// None is the absence of a value. Its size is zero and it reads as the
	// empty string.
	None Kind = iota
	// Scalar holds a single text value.
	Scalar
	// Sequence holds an ordered list of child nodes.
	Sequence
	// Mapping holds an insertion-ordered association from key to child node.
	Mapping
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "none"
	}
}

// Node is one value in a document tree. The zero value is a None node and is
// ready to use. A node has exactly one kind at a time; operations that
// require a different kind reset the node to the requested kind, discarding
// prior contents. Children are owned by their parent and live as long as it
// does.
//
// Nodes are not safe for concurrent mutation; independent trees are fully
// independent.
type Node struct {
	kind    Kind
	value   string
	items   []*Node
	keys    []string
	entries map[string]*Node
}

// Kind returns the node's current kind.
func (n *Node) Kind() Kind { return n.kind }

// IsNone reports whether the node holds no value.
func (n *Node) IsNone() bool { return n.kind == None }

// IsScalar reports whether the node holds a scalar value.
func (n *Node) IsScalar() bool { return n.kind == Scalar }

// IsSequence reports whether the node holds a sequence.
func (n *Node) IsSequence() bool { return n.kind == Sequence }

// IsMapping reports whether the node holds a mapping.
func (n *Node) IsMapping() bool { return n.kind == Mapping }

// Size returns the child count for sequences, the entry count for mappings,
// and zero otherwise.
func (n *Node) Size() int {
	switch n.kind {
	case Sequence:
		return len(n.items)
	case Mapping:
		return len(n.keys)
	default:
		return 0
	}
}

// Value returns the scalar text, or the empty string for non-scalar nodes.
func (n *Node) Value() string {
	if n.kind != Scalar {
		return ""
	}
	return n.value
}

// Clear resets the node to None, releasing any children.
func (n *Node) Clear() {
	n.kind = None
	n.value = ""
	n.items = nil
	n.keys = nil
	n.entries = nil
}

// SetValue turns the node into a scalar holding s.
func (n *Node) SetValue(s string) {
	n.Clear()
	n.kind = Scalar
	n.value = s
}

// CopyFrom deep-copies src into the node. A nil or None source clears the
// node. Copying a node onto itself is a no-op.
func (n *Node) CopyFrom(src *Node) {
	if src == n {
		return
	}
	n.Clear()
	if src == nil {
		return
	}
	switch src.kind {
	case Scalar:
		n.SetValue(src.value)
	case Sequence:
		for _, c := range src.items {
			n.PushBack().CopyFrom(c)
		}
	case Mapping:
		for _, k := range src.keys {
			n.Key(k).CopyFrom(src.entries[k])
		}
	}
}

// becomeSequence coerces the node to an empty sequence unless it already is
// one.
func (n *Node) becomeSequence() {
	if n.kind != Sequence {
		n.Clear()
		n.kind = Sequence
	}
}

// becomeMapping coerces the node to an empty mapping unless it already is
// one.
func (n *Node) becomeMapping() {
	if n.kind != Mapping {
		n.Clear()
		n.kind = Mapping
		n.entries = make(map[string]*Node)
	}
}

// Insert coerces the node to a sequence and inserts a new empty child at
// position min(i, Size()). Negative positions insert at the front. The new
// child is returned and the sequence stays densely indexed.
func (n *Node) Insert(i int) *Node {
	n.becomeSequence()
	if i < 0 {
		i = 0
	}
	if i > len(n.items) {
		i = len(n.items)
	}
	child := &Node{}
	n.items = append(n.items, nil)
	copy(n.items[i+1:], n.items[i:])
	n.items[i] = child
	return child
}

// PushFront coerces the node to a sequence and inserts a new empty child at
// position zero.
func (n *Node) PushFront() *Node { return n.Insert(0) }

// PushBack coerces the node to a sequence and appends a new empty child.
func (n *Node) PushBack() *Node {
	n.becomeSequence()
	child := &Node{}
	n.items = append(n.items, child)
	return child
}

// EraseIndex removes the sequence child at position i. It is a no-op when
// the node is not a sequence or i is out of range.
func (n *Node) EraseIndex(i int) {
	if n.kind != Sequence || i < 0 || i >= len(n.items) {
		return
	}
	n.items = append(n.items[:i], n.items[i+1:]...)
}

// Index coerces the node to a sequence and returns the child at position i.
// A miss returns a detached None node; reads through it behave as a None
// value and writes do not attach it to the tree.
func (n *Node) Index(i int) *Node {
	n.becomeSequence()
	if i < 0 || i >= len(n.items) {
		return &Node{}
	}
	return n.items[i]
}

// Key coerces the node to a mapping and returns the child for key k,
// inserting a new empty child when the key is absent. Re-using an existing
// key returns the same child.
func (n *Node) Key(k string) *Node {
	n.becomeMapping()
	if child, ok := n.entries[k]; ok {
		return child
	}
	child := &Node{}
	n.entries[k] = child
	n.keys = append(n.keys, k)
	return child
}

// HasKey reports whether the mapping contains key k. It never coerces the
// node.
func (n *Node) HasKey(k string) bool {
	if n.kind != Mapping {
		return false
	}
	_, ok := n.entries[k]
	return ok
}

// EraseKey removes the mapping entry for key k. It is a no-op when the node
// is not a mapping or the key is absent.
func (n *Node) EraseKey(k string) {
	if n.kind != Mapping {
		return
	}
	if _, ok := n.entries[k]; !ok {
		return
	}
	delete(n.entries, k)
	for i, key := range n.keys {
		if key == k {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
}

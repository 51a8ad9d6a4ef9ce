package node

import "iter"

// All returns an iterator over the node's children. Sequences yield their
// children in position order with an empty key; mappings yield entries in
// insertion order. Scalar and None nodes yield nothing.
func (n *Node) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		switch n.kind {
		case Sequence:
			for _, c := range n.items {
				if !yield("", c) {
					return
				}
			}
		case Mapping:
			for _, k := range n.keys {
				if !yield(k, n.entries[k]) {
					return
				}
			}
		}
	}
}

// Items returns an iterator over sequence children in position order. It
// yields nothing for non-sequence nodes.
func (n *Node) Items() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n.kind != Sequence {
			return
		}
		for _, c := range n.items {
			if !yield(c) {
				return
			}
		}
	}
}

// Keys returns an iterator over mapping keys in insertion order. It yields
// nothing for non-mapping nodes.
func (n *Node) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if n.kind != Mapping {
			return
		}
		for _, k := range n.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Package node provides the in-memory document tree that the yamlkit
// parser produces and the emitter consumes.
//
// A Node is one of four kinds: None, Scalar, Sequence, or Mapping. Sequences
// keep their children densely indexed from zero; mappings preserve the order
// in which keys were first inserted, which keeps serialization stable across
// round trips. Every operation on a Node is total: an index lookup that
// misses returns a detached None node and a key lookup that misses inserts
// a new empty child, so partial documents can be navigated fluently.
package node

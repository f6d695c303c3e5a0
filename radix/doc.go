// Package radix defines a 256-way byte-indexed radix trie.
//
// Keys are arbitrary byte sequences; each byte of a key selects one of
// 256 child slots at its level, so descending costs a single array
// index per byte with no hashing and no key comparisons.
//
// Each node has two fields:
//
//   - val/accepted - the value stored at the node, set iff some
//     inserted key ends exactly there (the node is that key's accept
//     state);
//   - children     - an owned *[256]node, one slot per possible next
//     byte, allocated as a whole level the first time any key has to
//     descend through the node.
//
// The structure only grows: nodes are never merged, pruned or freed
// individually, and a level is never reallocated once materialized.
// This is the trade-off that defines the trie - O(1) descent per byte
// against up to 256 node-sized slots per materialized level.
//
// The trie is write-only: it supports insertion and size queries,
// nothing else. It is not safe for concurrent mutation.
package radix

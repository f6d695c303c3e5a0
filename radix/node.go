package radix

// branchFactor is the number of child slots per node,
// one per possible byte value.
const branchFactor = 256

// level is a node's set of children, indexed by the next key byte.
// A whole level is heap-allocated as a unit, never slot by slot.
type level[T any] [branchFactor]node[T]

type node[T any] struct {
	// val holds the value for a key ending at this node;
	// it is meaningful only while accepted is true.
	val      T
	accepted bool

	// children contains the nodes for which the bytes consumed so
	// far are a proper prefix. Nil until the first key descends
	// through this node.
	children *level[T]
}

// insert walks the remaining key bytes down from n and stores val at
// the node where the key runs out. It returns the value that node
// held before, if any.
func (n *node[T]) insert(key []byte, val T) (prev T, replaced bool) {
	// no bytes left - n is the accept state for the consumed key
	if len(key) == 0 {
		return n.setValue(val)
	}
	if n.children == nil {
		n.children = new(level[T])
	}
	return n.children[key[0]].insert(key[1:], val)
}

func (n *node[T]) setValue(val T) (prev T, replaced bool) {
	prev, replaced = n.val, n.accepted
	n.val, n.accepted = val, true
	return prev, replaced
}

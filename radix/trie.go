package radix

// KV holds a key-value pair used to seed a trie at construction.
type KV[T any] struct {
	Key []byte
	Val T
}

type Trie[T any] struct {
	root node[T]
	// size counts Insert calls, not distinct keys: overwriting an
	// existing key still increments it.
	size int
}

func InitTrie[T any](trie *Trie[T], init ...KV[T]) *Trie[T] {
	*trie = Trie[T]{}
	for _, kv := range init {
		trie.Insert(kv.Key, kv.Val)
	}
	return trie
}

func NewTrie[T any](init ...KV[T]) *Trie[T] {
	return InitTrie(&Trie[T]{}, init...)
}

// Insert stores val under key. A zero-length key is valid and stores
// its value at the root. A value already stored under the same key is
// overwritten and discarded.
func (t *Trie[T]) Insert(key []byte, val T) {
	t.root.insert(key, val)
	t.size++
}

// InsertString stores val under the raw bytes of key.
func (t *Trie[T]) InsertString(key string, val T) {
	t.Insert([]byte(key), val)
}

// Len returns the number of insertions performed. An overwrite counts
// as a new insertion, so Len can exceed the number of distinct keys.
func (t *Trie[T]) Len() int {
	return t.size
}

func (t *Trie[T]) Empty() bool {
	return t.size == 0
}

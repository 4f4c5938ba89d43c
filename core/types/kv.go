package types

// KV is a single key/value pair of a batched write.
type KV struct {
	key   []byte
	value []byte
}

// NewKV creates a key/value pair.
func NewKV(key, value []byte) KV {
	return KV{
		key:   append([]byte{}, key...),
		value: append([]byte{}, value...),
	}
}

// GetKey returns a copy of the key.
func (kv KV) GetKey() []byte {
	return append([]byte{}, kv.key...)
}

// GetValue returns a copy of the value.
func (kv KV) GetValue() []byte {
	return append([]byte{}, kv.value...)
}

// KVSet is an ordered list of key/value pairs used to batch multiple writes
// in a single request. The insertion order is preserved and duplicated keys
// are allowed.
type KVSet struct {
	pairs []KV
}

// NewKVSet creates a set from the ordered list of pairs.
func NewKVSet(pairs ...KV) KVSet {
	return KVSet{pairs: append([]KV{}, pairs...)}
}

// Add returns a new set with the pair appended at the end.
func (s KVSet) Add(key, value []byte) KVSet {
	pairs := make([]KV, len(s.pairs), len(s.pairs)+1)
	copy(pairs, s.pairs)

	return KVSet{pairs: append(pairs, NewKV(key, value))}
}

// Len returns the number of pairs in the set.
func (s KVSet) Len() int {
	return len(s.pairs)
}

// GetKV returns the pair at the given index.
func (s KVSet) GetKV(index int) KV {
	return s.pairs[index]
}

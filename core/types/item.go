package types

import (
	"encoding/binary"
	"fmt"
)

// Item is a key/value pair annotated with the position of the entry in the
// server's authenticated log. Its value becomes meaningful to the caller only
// after the proof shipped alongside has been verified.
type Item struct {
	key   []byte
	value []byte
	index uint64
}

// NewItem creates an item from a key/value pair and its log index.
func NewItem(key, value []byte, index uint64) Item {
	return Item{
		key:   append([]byte{}, key...),
		value: append([]byte{}, value...),
		index: index,
	}
}

// GetKey returns a copy of the item key.
func (i Item) GetKey() []byte {
	return append([]byte{}, i.key...)
}

// GetValue returns a copy of the item value.
func (i Item) GetValue() []byte {
	return append([]byte{}, i.value...)
}

// GetIndex returns the index of the entry in the log.
func (i Item) GetIndex() uint64 {
	return i.index
}

// Digest returns the payload that is hashed as the leaf of the authenticated
// log for this item. The layout is the 8-byte big endian index followed by
// the key and the value.
func (i Item) Digest() []byte {
	buffer := make([]byte, 8, 8+len(i.key)+len(i.value))
	binary.BigEndian.PutUint64(buffer, i.index)

	buffer = append(buffer, i.key...)
	buffer = append(buffer, i.value...)

	return buffer
}

// String implements fmt.Stringer. It returns a short representation of the
// item.
func (i Item) String() string {
	return fmt.Sprintf("item[%d]{%x}", i.index, i.key)
}

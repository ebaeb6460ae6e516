// Package models defines the JSON value representation: a tagged variant
// Value plus singly-linked, length-tracked containers for arrays and
// objects. Container nodes are charged to a caller-supplied arena, so a
// whole document tree is reclaimed by rewinding or resetting that arena
// rather than by freeing nodes one at a time.
package models

import (
	"github.com/mcncl/arenajson/internal/arena"
)

// Kind identifies which variant of a Value is active.
type Kind int

const (
	KindNumber Kind = iota
	KindBoolean
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a JSON value with exactly one active payload, selected by Kind.
// Values are never mutated after construction except by container appends.
type Value struct {
	kind Kind

	num float64
	b   bool
	str string
	arr Array
	obj Object
}

// ArrayNode is one element of an Array's linked list.
type ArrayNode struct {
	Value Value
	next  *ArrayNode
}

// Next returns the following node, or nil at the tail.
func (n *ArrayNode) Next() *ArrayNode { return n.next }

// ObjectNode is one key/value entry of an Object's linked list.
type ObjectNode struct {
	Key   string
	Value Value
	next  *ObjectNode
}

// Next returns the following entry, or nil at the tail.
func (n *ObjectNode) Next() *ObjectNode { return n.next }

// Array is an insertion-ordered sequence of Values backed by a singly
// linked list. Len always equals the number of reachable nodes.
type Array struct {
	len  int
	head *ArrayNode
}

// Object is an insertion-ordered sequence of key/value entries backed by
// a singly linked list. Duplicate keys are permitted; lookup returns the
// first match.
type Object struct {
	len  int
	head *ObjectNode
}

// NumberValue constructs a number Value.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// BooleanValue constructs a boolean Value.
func BooleanValue(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// StringValue constructs a string Value. The text is expected to be
// arena-owned already; no further allocation happens here.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ArrayValue constructs an empty array Value.
func ArrayValue() Value {
	return Value{kind: KindArray}
}

// ObjectValue constructs an empty object Value.
func ObjectValue() Value {
	return Value{kind: KindObject}
}

// Kind returns the active variant tag.
func (v *Value) Kind() Kind { return v.kind }

// AsNumber returns the numeric payload, reporting false when the value is
// not a number. There is no coercion between variants.
func (v *Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsBoolean returns the boolean payload, reporting false when the value
// is not a boolean.
func (v *Value) AsBoolean() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

// AsString returns the string payload, reporting false when the value is
// not a string.
func (v *Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsArray returns the array payload, reporting false when the value is
// not an array.
func (v *Value) AsArray() (*Array, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return &v.arr, true
}

// AsObject returns the object payload, reporting false when the value is
// not an object.
func (v *Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return &v.obj, true
}

// arrayNodeSize and objectNodeSize are the per-node charges made against
// the arena. The node structures themselves live on the Go heap for
// memory safety; the charge keeps their lifetime accounting tied to the
// arena's mark/rewind discipline.
const (
	arrayNodeSize  = 3 * 8
	objectNodeSize = 5 * 8
)

// Len returns the number of elements.
func (c *Array) Len() int { return c.len }

// Head returns the first node for manual iteration, or nil when empty.
func (c *Array) Head() *ArrayNode { return c.head }

// Append links v at the tail of the array, charging the node to a. The
// walk to the tail is O(len): fine for small and medium documents, a
// known scalability limit for very large ones.
func (c *Array) Append(a *arena.Arena, v Value) error {
	if err := a.Reserve(arrayNodeSize); err != nil {
		return err
	}
	node := &ArrayNode{Value: v}
	if c.head == nil {
		c.head = node
	} else {
		cur := c.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = node
	}
	c.len++
	return nil
}

// Item returns the i-th element in insertion order, reporting false when
// i is out of range.
func (c *Array) Item(i int) (*Value, bool) {
	if i < 0 || i >= c.len {
		return nil, false
	}
	cur := c.head
	for ; i > 0; i-- {
		cur = cur.next
	}
	return &cur.Value, true
}

// Len returns the number of entries.
func (c *Object) Len() int { return c.len }

// Head returns the first entry for manual iteration, or nil when empty.
func (c *Object) Head() *ObjectNode { return c.head }

// Append links a key/value entry at the tail of the object, charging the
// node to a. Duplicate keys are kept; Find returns the first.
func (c *Object) Append(a *arena.Arena, key string, v Value) error {
	if err := a.Reserve(objectNodeSize); err != nil {
		return err
	}
	node := &ObjectNode{Key: key, Value: v}
	if c.head == nil {
		c.head = node
	} else {
		cur := c.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = node
	}
	c.len++
	return nil
}

// Item returns the i-th entry's value in insertion order, reporting
// false when i is out of range.
func (c *Object) Item(i int) (*Value, bool) {
	if i < 0 || i >= c.len {
		return nil, false
	}
	cur := c.head
	for ; i > 0; i-- {
		cur = cur.next
	}
	return &cur.Value, true
}

// Find returns the value for the first entry whose key equals key,
// reporting false when no entry matches. An empty object short-circuits.
func (c *Object) Find(key string) (*Value, bool) {
	if c.len == 0 {
		return nil, false
	}
	for cur := c.head; cur != nil; cur = cur.next {
		if cur.Key == key {
			return &cur.Value, true
		}
	}
	return nil, false
}

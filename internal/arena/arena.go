// Package arena implements a fixed-capacity bump allocator with mark/rewind.
//
// Memory is carved from one contiguous buffer in a single direction.
// Individual allocations are never freed; callers reclaim space in bulk by
// rewinding to a previously captured mark, or by resetting the whole arena.
// The capacity is a hard limit fixed at construction time: the arena never
// grows, and allocation beyond it fails with ErrArenaFull.
//
// Rewinding invalidates every allocation made after the mark was taken.
// Scratch usage must therefore be strictly LIFO with respect to any live
// data being built at the same time: mixing a rewind with allocations that
// straddle the mark and are meant to survive is a caller error.
package arena

import "errors"

// DefaultCapacity is the arena size used when none is specified (1 MiB).
const DefaultCapacity = 1 << 20

// ErrArenaFull is returned when an allocation would exceed the arena's
// fixed capacity.
var ErrArenaFull = errors.New("arena capacity exhausted")

// Arena is a caller-owned bump allocator. It is not safe for concurrent
// use; run independent parses on separate arenas.
type Arena struct {
	buf []byte
	off int
}

// New creates an Arena with the given capacity in bytes. A capacity of
// zero or less selects DefaultCapacity.
func New(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Arena{buf: make([]byte, capacity)}
}

// Alloc bump-allocates n bytes and returns them as a slice into the
// arena's buffer. The returned bytes may contain stale data from
// allocations reclaimed by an earlier rewind.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New("negative allocation size")
	}
	if a.off+n > len(a.buf) {
		return nil, ErrArenaFull
	}
	out := a.buf[a.off : a.off+n]
	a.off += n
	return out, nil
}

// Reserve accounts n bytes against the arena's capacity without handing
// out buffer storage. It is used for container nodes, whose structures
// live on the Go heap for memory safety but whose lifetime is tied to the
// arena: a rewind past a reservation invalidates the node it paid for.
func (a *Arena) Reserve(n int) error {
	_, err := a.Alloc(n)
	return err
}

// Copy duplicates b into the arena and returns the arena-owned copy.
func (a *Arena) Copy(b []byte) ([]byte, error) {
	out, err := a.Alloc(len(b))
	if err != nil {
		return nil, err
	}
	copy(out, b)
	return out, nil
}

// CopyString duplicates s, charging the arena for its bytes. The returned
// string is immutable per Go semantics; the charge ties its lifetime
// accounting to the arena like every other allocation.
func (a *Arena) CopyString(s string) (string, error) {
	out, err := a.Alloc(len(s))
	if err != nil {
		return "", err
	}
	copy(out, s)
	return string(out), nil
}

// Mark captures the current allocation cursor.
func (a *Arena) Mark() int {
	return a.off
}

// Rewind truncates the allocation cursor back to mark, reclaiming in O(1)
// everything allocated since the mark was taken. Marks outside the range
// of past allocations are ignored.
func (a *Arena) Rewind(mark int) {
	if mark < 0 || mark > a.off {
		return
	}
	a.off = mark
}

// Reset rewinds the arena to empty.
func (a *Arena) Reset() {
	a.off = 0
}

// Len returns the number of bytes currently allocated.
func (a *Arena) Len() int {
	return a.off
}

// Cap returns the arena's fixed capacity.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Package arena provides tracked-allocation bookkeeping for go-argspec.
// Every dynamically sized value produced while declaring parameters and
// parsing arguments is registered here and released en masse at teardown,
// which lets tests assert that a context leaves nothing behind.
package arena

import "unsafe"

// Handle identifies one tracked allocation. A handle stays valid until its
// record is released and is never reused within the same Arena.
type Handle uint64

type record struct {
	id  Handle
	buf []byte
}

// Arena owns a growable list of tracked allocations. Records are located by
// linear scan and removed by swapping with the last element, so release
// order is not significant. Not safe for concurrent use.
type Arena struct {
	records    []record
	size       int
	next       Handle
	totalBytes int64
}

const initialReserve = 8

// New creates an empty arena.
func New() *Arena {
	return &Arena{
		records: make([]record, initialReserve),
		next:    1,
	}
}

// Alloc registers a zeroed buffer of the given size and returns its handle.
func (a *Arena) Alloc(size int) Handle {
	if a.size == len(a.records) {
		grown := make([]record, len(a.records)*2)
		copy(grown, a.records)
		a.records = grown
	}
	h := a.next
	a.next++
	a.records[a.size] = record{id: h, buf: make([]byte, size)}
	a.size++
	a.totalBytes += int64(size)
	return h
}

// Bytes returns the buffer backing h.
func (a *Arena) Bytes(h Handle) []byte {
	return a.records[a.find(h)].buf
}

// Grow reallocates the buffer backing h to hold at least size bytes, doubling
// the current capacity when that is larger. Existing contents are preserved
// and h remains valid.
func (a *Arena) Grow(h Handle, size int) []byte {
	i := a.find(h)
	old := a.records[i].buf
	grown := len(old) * 2
	if grown < size {
		grown = size
	}
	buf := make([]byte, grown)
	copy(buf, old)
	a.records[i].buf = buf
	a.totalBytes += int64(grown - len(old))
	return buf
}

// Release frees the record for h by swapping it with the last tracked record.
func (a *Arena) Release(h Handle) {
	i := a.find(h)
	a.totalBytes -= int64(len(a.records[i].buf))
	a.size--
	if i != a.size {
		a.records[i] = a.records[a.size]
	}
	a.records[a.size] = record{}
}

// Reset releases every tracked record at once.
func (a *Arena) Reset() {
	for i := 0; i < a.size; i++ {
		a.records[i] = record{}
	}
	a.size = 0
	a.totalBytes = 0
}

// Count returns the number of live records.
func (a *Arena) Count() int { return a.size }

// TotalBytes returns the summed size of all live buffers.
func (a *Arena) TotalBytes() int64 { return a.totalBytes }

// CopyString copies s into an arena-owned buffer and returns a string view
// over it. The copy lives until Release or Reset.
func (a *Arena) CopyString(s string) string {
	h := a.Alloc(len(s))
	buf := a.Bytes(h)
	copy(buf, s)
	return String(buf)
}

// find locates the record for h. A miss is a logic error in the engine, not
// user input, so it panics rather than returning a recoverable error.
func (a *Arena) find(h Handle) int {
	for i := 0; i < a.size; i++ {
		if a.records[i].id == h {
			return i
		}
	}
	panic("arena: handle is not tracked")
}

// String converts a byte slice to a string without copying, the same way the
// hot parsing path avoids allocations.
func String(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

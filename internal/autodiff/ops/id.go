package ops

import (
	"fmt"
	"sync/atomic"
)

// NodeID identifies a node for the lifetime of the process.
//
// Ids are comparable and can be used as map keys. They are ordered by
// allocator first and then by allocation sequence, so within one allocator a
// node always sorts after the nodes it was built from.
type NodeID struct {
	space uint64 // allocator that issued the id
	seq   uint64 // 1-based position within that allocator
}

// IsZero reports whether id is the zero value, which no allocator issues.
func (id NodeID) IsZero() bool {
	return id.seq == 0
}

// Less reports whether id sorts before other.
func (id NodeID) Less(other NodeID) bool {
	if id.space != other.space {
		return id.space < other.space
	}
	return id.seq < other.seq
}

// String returns a short form such as "n1.42".
func (id NodeID) String() string {
	return fmt.Sprintf("n%d.%d", id.space, id.seq)
}

// spaces hands out a distinct space to every allocator, which keeps ids from
// different allocators apart.
var spaces atomic.Uint64

// IDAllocator issues NodeIDs. It is safe for concurrent use.
//
// Several builders may share one allocator; independent allocators may
// coexist in one process without ever issuing the same id.
type IDAllocator struct {
	space uint64
	next  atomic.Uint64
}

// NewIDAllocator creates an allocator with its own id space.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{space: spaces.Add(1)}
}

// Next returns a fresh id.
func (a *IDAllocator) Next() NodeID {
	return NodeID{space: a.space, seq: a.next.Add(1)}
}

// Allocated returns how many ids have been issued so far.
func (a *IDAllocator) Allocated() uint64 {
	return a.next.Load()
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMC is a bounded multi-producer multi-consumer queue using the ticket
// protocol: per-slot sequence numbers plus CAS-claimed cursors.
//
// Per-slot sequences provide:
//   - Full ABA safety via sequence-based validation
//   - Works with both distinct and non-distinct values
//   - Good performance under moderate contention
//
// For a logical position pos (slot pos & mask):
//
//	seq == pos       slot is free for the enqueue at pos
//	seq == pos+1     slot holds the value published at pos
//	seq == pos+cap   slot is free for the next generation
//
// The acquire load of a slot's sequence synchronizes with the release
// store performed by the previous owner, so the payload field itself is
// accessed by exactly one goroutine at a time with no further
// synchronization.
//
// Memory: n slots (16+ bytes per slot)
type MPMC[T any] struct {
	_        pad
	tail     atomix.Uint64 // Producer cursor
	_        pad
	head     atomix.Uint64 // Consumer cursor
	_        pad
	buffer   []mpmcSlot[T]
	mask     uint64
	capacity uint64
}

type mpmcSlot[T any] struct {
	seq  atomix.Uint64
	data T
	_    padShort // Pad to cache line
}

// NewMPMC creates a bounded MPMC queue with exactly the given capacity.
// Returns ErrInvalidCapacity unless capacity is a power of two >= 2.
func NewMPMC[T any](capacity int) (*MPMC[T], error) {
	if !validCapacity(capacity) {
		return nil, ErrInvalidCapacity
	}

	n := uint64(capacity)
	q := &MPMC[T]{
		buffer:   make([]mpmcSlot[T], n),
		mask:     n - 1,
		capacity: n,
	}

	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q, nil
}

// Enqueue adds an element to the queue (non-blocking).
// Returns ErrWouldBlock if the queue is full; the caller keeps ownership
// of *elem, which is left untouched.
func (q *MPMC[T]) Enqueue(elem *T) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		slot := &q.buffer[tail&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(tail)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				slot.data = *elem
				slot.seq.StoreRelease(tail + 1)
				return nil
			}
		} else if diff < 0 {
			// Slot not yet freed by the previous generation's
			// consumer: full from this producer's view.
			return ErrWouldBlock
		}
		// diff > 0: stale cursor view, reload and retry.
		sw.Once()
	}
}

// Dequeue removes and returns the oldest element (non-blocking).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPMC[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				elem := slot.data
				var zero T
				slot.data = zero
				slot.seq.StoreRelease(head + q.capacity)
				return elem, nil
			}
		} else if diff < 0 {
			var zero T
			return zero, ErrWouldBlock
		}
		sw.Once()
	}
}

// EnqueueSpin adds an element, busy-waiting until a slot frees up.
// It never sleeps and never yields to the scheduler; on a full queue it
// burns CPU until a consumer makes room. Prefer Enqueue with iox.Backoff
// when latency is not critical.
func (q *MPMC[T]) EnqueueSpin(elem *T) {
	sw := spin.Wait{}
	for q.Enqueue(elem) != nil {
		sw.Once()
	}
}

// DequeueSpin removes and returns the oldest element, busy-waiting until
// one arrives. A DequeueSpin on a permanently quiet queue spins forever.
func (q *MPMC[T]) DequeueSpin() T {
	sw := spin.Wait{}
	for {
		elem, err := q.Dequeue()
		if err == nil {
			return elem
		}
		sw.Once()
	}
}

// Cap returns the queue capacity.
func (q *MPMC[T]) Cap() int {
	return int(q.capacity)
}

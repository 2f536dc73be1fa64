// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMCIndirect is the ticket-protocol MPMC queue for uintptr values.
//
// Same algorithm as MPMC[T] with a machine-word payload: useful for pool
// indices and handles where a full generic instantiation is overkill.
// Any uintptr value, including zero, can be enqueued; the slot sequence
// alone tracks occupancy.
//
// Memory: 16 bytes of live data per slot, padded to a cache line
type MPMCIndirect struct {
	_        pad
	tail     atomix.Uint64 // Producer cursor
	_        pad
	head     atomix.Uint64 // Consumer cursor
	_        pad
	buffer   []indirectSlot
	mask     uint64
	capacity uint64
}

type indirectSlot struct {
	seq  atomix.Uint64
	data uintptr
	_    padShort // Pad to cache line
}

// NewMPMCIndirect creates a bounded MPMC queue for uintptr values.
// Returns ErrInvalidCapacity unless capacity is a power of two >= 2.
func NewMPMCIndirect(capacity int) (*MPMCIndirect, error) {
	if !validCapacity(capacity) {
		return nil, ErrInvalidCapacity
	}

	n := uint64(capacity)
	q := &MPMCIndirect{
		buffer:   make([]indirectSlot, n),
		mask:     n - 1,
		capacity: n,
	}

	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q, nil
}

// Enqueue adds an element to the queue (non-blocking).
// Returns ErrWouldBlock if the queue is full.
func (q *MPMCIndirect) Enqueue(elem uintptr) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		slot := &q.buffer[tail&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(tail)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				slot.data = elem
				slot.seq.StoreRelease(tail + 1)
				return nil
			}
		} else if diff < 0 {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Dequeue removes and returns the oldest element (non-blocking).
// Returns (0, ErrWouldBlock) if the queue is empty.
func (q *MPMCIndirect) Dequeue() (uintptr, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				elem := slot.data
				slot.data = 0
				slot.seq.StoreRelease(head + q.capacity)
				return elem, nil
			}
		} else if diff < 0 {
			return 0, ErrWouldBlock
		}
		sw.Once()
	}
}

// EnqueueSpin adds an element, busy-waiting until a slot frees up.
func (q *MPMCIndirect) EnqueueSpin(elem uintptr) {
	sw := spin.Wait{}
	for q.Enqueue(elem) != nil {
		sw.Once()
	}
}

// DequeueSpin removes and returns the oldest element, busy-waiting until
// one arrives.
func (q *MPMCIndirect) DequeueSpin() uintptr {
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
func (q *MPMCIndirect) Cap() int {
	return int(q.capacity)
}

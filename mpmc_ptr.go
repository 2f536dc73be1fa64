// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMCPtr is the ticket-protocol MPMC queue for unsafe.Pointer values.
//
// Same algorithm as MPMC[T] with zero-copy pointer passing: the producer
// enqueues a pointer and the consumer receives the same pointer, so the
// pointed-to object is never copied. Ownership transfers with the pointer;
// the producer must not touch the object after a successful Enqueue.
//
// The slot's stored pointer is cleared on dequeue so the referent can be
// garbage collected once the consumer drops it.
type MPMCPtr struct {
	_        pad
	tail     atomix.Uint64 // Producer cursor
	_        pad
	head     atomix.Uint64 // Consumer cursor
	_        pad
	buffer   []ptrSlot
	mask     uint64
	capacity uint64
}

type ptrSlot struct {
	seq  atomix.Uint64
	data unsafe.Pointer
	_    padShort // Pad to cache line
}

// NewMPMCPtr creates a bounded MPMC queue for unsafe.Pointer values.
// Returns ErrInvalidCapacity unless capacity is a power of two >= 2.
func NewMPMCPtr(capacity int) (*MPMCPtr, error) {
	if !validCapacity(capacity) {
		return nil, ErrInvalidCapacity
	}

	n := uint64(capacity)
	q := &MPMCPtr{
		buffer:   make([]ptrSlot, n),
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
func (q *MPMCPtr) Enqueue(elem unsafe.Pointer) error {
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
// Returns (nil, ErrWouldBlock) if the queue is empty.
func (q *MPMCPtr) Dequeue() (unsafe.Pointer, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				elem := slot.data
				slot.data = nil
				slot.seq.StoreRelease(head + q.capacity)
				return elem, nil
			}
		} else if diff < 0 {
			return nil, ErrWouldBlock
		}
		sw.Once()
	}
}

// EnqueueSpin adds an element, busy-waiting until a slot frees up.
func (q *MPMCPtr) EnqueueSpin(elem unsafe.Pointer) {
	sw := spin.Wait{}
	for q.Enqueue(elem) != nil {
		sw.Once()
	}
}

// DequeueSpin removes and returns the oldest element, busy-waiting until
// one arrives.
func (q *MPMCPtr) DequeueSpin() unsafe.Pointer {
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
func (q *MPMCPtr) Cap() int {
	return int(q.capacity)
}

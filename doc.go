// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tickq provides a bounded lock-free MPMC FIFO queue built on the
// ticket protocol (the Vyukov bounded queue).
//
// The queue is a fixed ring of slots, each guarded by its own atomic
// sequence number. Producers and consumers claim logical positions by
// compare-and-swap on a shared cursor and hand the payload off through the
// slot sequence alone; there are no mutexes anywhere. A single global FIFO
// order is preserved: values become available for dequeue in exactly the
// order their enqueue claims were won, regardless of which goroutine
// performed each enqueue.
//
// # Quick Start
//
//	q, err := tickq.NewMPMC[Event](1024)
//	if err != nil {
//	    // capacity was not a power of two >= 2
//	}
//
//	// Enqueue (non-blocking)
//	ev := Event{ID: 42}
//	if err := q.Enqueue(&ev); tickq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	ev, err := q.Dequeue()
//	if tickq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # The Ticket Protocol
//
// Slot i starts with sequence i. For a logical position pos (slot
// pos & mask), the sequence encodes the slot state:
//
//	seq == pos       free, awaiting the enqueue at pos
//	seq == pos+1     holds the value published at pos
//	seq == pos+cap   free again, one generation later
//
// A producer that observes seq == pos races for the position with a CAS on
// the tail cursor; the winner writes the payload and publishes it with a
// release store of pos+1. A consumer that observes seq == pos+1 races for
// the head cursor, takes the payload, and republishes the slot with
// pos+cap. The acquire load of the sequence synchronizes with the release
// store of the previous owner, so the payload needs no synchronization of
// its own.
//
// # Blocking Operations
//
// EnqueueSpin and DequeueSpin busy-wait on the non-blocking operations
// using CPU pause instructions. They never sleep, never yield to the
// scheduler, and have no timeout: a DequeueSpin on a permanently quiet
// queue spins forever. This trades power for minimal hand-off latency. For
// softer waiting, retry the non-blocking operations with [iox.Backoff]:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&ev) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Queue Flavors
//
// Three flavors share the same protocol and differ only in payload type:
//
//	MPMC[T]      - generic, value copied in on enqueue, copied out on dequeue
//	MPMCIndirect - uintptr values (pool indices, handles)
//	MPMCPtr      - unsafe.Pointer values (zero-copy ownership transfer)
//
// For large types (>512 bytes), prefer MPMCPtr or MPMCIndirect to avoid
// copy overhead.
//
// # Capacity
//
// Capacity is fixed at construction and must be a power of two >= 2;
// constructors return [ErrInvalidCapacity] otherwise. There is no rounding:
// NewMPMC[int](3) fails rather than silently allocating 4 slots. The ring
// never grows.
//
// Length is intentionally not provided because accurate counts in
// lock-free algorithms require expensive cross-core synchronization. Track
// counts in application logic when needed.
//
// # Error Handling
//
// Queues return [ErrWouldBlock] when operations cannot proceed. This error
// is sourced from [code.hybscloud.com/iox] for ecosystem consistency.
// Full and empty are routine outcomes, not failures: on a rejected enqueue
// the caller keeps ownership of the value, untouched; no value is ever
// duplicated or silently dropped.
//
// For semantic error classification (delegates to iox):
//
//	tickq.IsWouldBlock(err)  // true if queue full/empty
//	tickq.IsSemantic(err)    // true if control flow signal
//	tickq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Thread Safety
//
// Every operation is safe from any number of goroutines; the queue itself
// has no owning goroutine. A *MPMC[T] may be shared freely. Values moved
// through the queue change owner: the producer transfers ownership on
// accepted enqueue, and whichever consumer claims the slot receives it.
// Item types must therefore be safe to hand between goroutines (no
// goroutine-affine resources).
//
// Cursors and sequences are 64-bit and increase without bound; wraparound
// would require ~10^19 operations and is treated as unreachable.
//
// # Race Detection
//
// Go's race detector is not designed for lock-free algorithm verification.
// It tracks explicit synchronization primitives (mutex, channels,
// WaitGroup) but cannot observe happens-before relationships established
// through atomic memory orderings (acquire-release semantics).
//
// The ticket protocol protects each slot's payload with acquire-release
// pairs on the slot sequence, a separate variable from the payload itself,
// so the race detector may report false positives on correct executions.
// Tests incompatible with race detection are excluded via //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package tickq

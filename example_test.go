// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq_test

import (
	"fmt"
	"unsafe"

	"code.hybscloud.com/tickq"
)

// ExampleNewMPMC demonstrates basic enqueue/dequeue with backpressure
// and empty handling.
func ExampleNewMPMC() {
	q, err := tickq.NewMPMC[string](4)
	if err != nil {
		panic(err)
	}

	for _, s := range []string{"alpha", "beta", "gamma", "delta"} {
		if err := q.Enqueue(&s); err != nil {
			fmt.Println("full:", s)
		}
	}

	// Queue is full now
	extra := "epsilon"
	if err := q.Enqueue(&extra); tickq.IsWouldBlock(err) {
		fmt.Println("full:", extra)
	}

	for {
		s, err := q.Dequeue()
		if tickq.IsWouldBlock(err) {
			fmt.Println("empty")
			break
		}
		fmt.Println(s)
	}

	// Output:
	// full: epsilon
	// alpha
	// beta
	// gamma
	// delta
	// empty
}

// ExampleNewMPMC_invalidCapacity shows strict capacity validation:
// capacity must be an exact power of two, never rounded.
func ExampleNewMPMC_invalidCapacity() {
	_, err := tickq.NewMPMC[int](3)
	fmt.Println(err)

	q, _ := tickq.NewMPMC[int](4)
	fmt.Println(q.Cap())

	// Output:
	// tickq: capacity must be a power of two >= 2
	// 4
}

// ExampleNewMPMCIndirect shows a free list of pool indices.
func ExampleNewMPMCIndirect() {
	pool := make([][]byte, 4)
	freeList, err := tickq.NewMPMCIndirect(4)
	if err != nil {
		panic(err)
	}

	// All buffers start free
	for i := range pool {
		pool[i] = make([]byte, 64)
		freeList.Enqueue(uintptr(i))
	}

	// Allocate two buffers
	idx1, _ := freeList.Dequeue()
	idx2, _ := freeList.Dequeue()
	fmt.Println("allocated:", idx1, idx2)

	// Return one
	freeList.Enqueue(idx1)
	idx3, _ := freeList.Dequeue()
	fmt.Println("reused:", idx3 == 2)

	// Output:
	// allocated: 0 1
	// reused: true
}

// ExampleNewMPMCPtr shows zero-copy pointer transfer.
func ExampleNewMPMCPtr() {
	type Message struct {
		Data string
	}

	q, err := tickq.NewMPMCPtr(2)
	if err != nil {
		panic(err)
	}

	// Producer side: ownership transfers with the pointer
	msg := &Message{Data: "payload"}
	q.Enqueue(unsafe.Pointer(msg))

	// Consumer side: same pointer, no copy
	p, _ := q.Dequeue()
	got := (*Message)(p)
	fmt.Println(got.Data, got == msg)

	// Output:
	// payload true
}

// ExampleIsWouldBlock classifies queue outcomes.
func ExampleIsWouldBlock() {
	q, _ := tickq.NewMPMC[int](2)

	_, err := q.Dequeue()
	fmt.Println("would block:", tickq.IsWouldBlock(err))
	fmt.Println("semantic:", tickq.IsSemantic(err))
	fmt.Println("non-failure:", tickq.IsNonFailure(err))

	// Output:
	// would block: true
	// semantic: true
	// non-failure: true
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq_test

import (
	"sync"
	"testing"
	"unsafe"

	"code.hybscloud.com/spin"
	"code.hybscloud.com/tickq"
)

// =============================================================================
// Uncontended Baselines
// =============================================================================

func BenchmarkMPMC_SingleOp(b *testing.B) {
	q, _ := tickq.NewMPMC[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkMPMCIndirect_SingleOp(b *testing.B) {
	q, _ := tickq.NewMPMCIndirect(1024)

	b.ResetTimer()
	for i := range b.N {
		q.Enqueue(uintptr(i))
		q.Dequeue()
	}
}

func BenchmarkMPMCPtr_SingleOp(b *testing.B) {
	q, _ := tickq.NewMPMCPtr(1024)
	val := 42

	b.ResetTimer()
	for range b.N {
		q.Enqueue(unsafe.Pointer(&val))
		q.Dequeue()
	}
}

func BenchmarkMPMC_SpinOp(b *testing.B) {
	q, _ := tickq.NewMPMC[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.EnqueueSpin(&v)
		q.DequeueSpin()
	}
}

// =============================================================================
// Contended Producer/Consumer Pairs
// =============================================================================

func BenchmarkMPMC_Parallel(b *testing.B) {
	q, _ := tickq.NewMPMC[int](1024)

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i&1 == 0 {
				v := i
				if q.Enqueue(&v) != nil {
					q.Dequeue()
				}
			} else if _, err := q.Dequeue(); err != nil {
				v := i
				q.Enqueue(&v)
			}
			i++
		}
	})
}

func BenchmarkMPMC_ProducerConsumerPairs(b *testing.B) {
	const pairs = 4

	q, _ := tickq.NewMPMC[int](1024)
	perPair := b.N / pairs
	if perPair == 0 {
		perPair = 1
	}

	var wg sync.WaitGroup
	b.ResetTimer()

	for range pairs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sw := spin.Wait{}
			for i := range perPair {
				v := i
				for q.Enqueue(&v) != nil {
					sw.Once()
				}
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			sw := spin.Wait{}
			for range perPair {
				for {
					if _, err := q.Dequeue(); err == nil {
						break
					}
					sw.Once()
				}
			}
		}()
	}

	wg.Wait()
}

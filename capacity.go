// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

// validCapacity reports whether capacity is a power of two >= 2.
// The power-of-two requirement lets the ring map a position to its slot
// with a single mask instead of a modulo.
func validCapacity(capacity int) bool {
	return capacity >= 2 && capacity&(capacity-1) == 0
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte

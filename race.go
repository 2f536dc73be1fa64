// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package tickq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent scenarios: the ticket protocol's
// cross-variable acquire/release ordering is invisible to the detector
// and triggers false positives.
const RaceEnabled = true

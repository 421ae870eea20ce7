// SPDX-License-Identifier: EPL-2.0

package utils

// ClampFloat32 limits x to the closed range [lo, hi].
func ClampFloat32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

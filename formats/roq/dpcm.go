// SPDX-License-Identifier: EPL-2.0

package roq

// SampleRate is the rate of RoQ audio. The stream does not carry it; every
// known encoder writes 22050 Hz.
const SampleRate = 22050

var squareTable = func() [256]int16 {
	var t [256]int16
	for i := range 128 {
		sq := int16(i * i)
		t[i] = sq
		t[i+128] = -sq
	}
	return t
}()

// SquareTable returns the DPCM delta table: index i < 128 maps to i*i and
// index i >= 128 maps to -(i-128)*(i-128).
func SquareTable() [256]int16 {
	return squareTable
}

// dpcm decodes sound chunks into a scratch buffer shared between calls.
type dpcm struct {
	buf []int16
}

func (d *dpcm) grow(n int) []int16 {
	if cap(d.buf) < n {
		d.buf = make([]int16, n)
	}
	d.buf = d.buf[:n]
	return d.buf
}

// mono decodes one sample per payload byte. The accumulator starts at the
// chunk argument.
func (d *dpcm) mono(data []byte, arg uint16) []int16 {
	out := d.grow(len(data))

	acc := int16(arg)
	for i, b := range data {
		acc += squareTable[b]
		out[i] = acc
	}

	return out
}

// stereo decodes interleaved left/right byte pairs. The high byte of the
// argument seeds the left channel and the low byte the right one, both
// shifted into the top of the 16-bit accumulator.
func (d *dpcm) stereo(data []byte, arg uint16) []int16 {
	frames := len(data) / 2
	out := d.grow(frames * 2)

	left := int16(arg & 0xFF00)
	right := int16((arg & 0x00FF) << 8)
	for i := range frames {
		left += squareTable[data[2*i]]
		right += squareTable[data[2*i+1]]
		out[2*i] = left
		out[2*i+1] = right
	}

	return out
}

// SPDX-License-Identifier: EPL-2.0

package audio

// Deinterleave splits interleaved PCM16 into one slice per channel. Hosts
// whose voices only play mono buffers use it to send each channel of a
// stereo block to its own voice. A trailing partial frame is dropped.
func Deinterleave(samples []int16, channels int) ([][]int16, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	frames := len(samples) / channels
	out := make([][]int16, channels)
	for c := range out {
		out[c] = make([]int16, frames)
	}

	for f := range frames {
		for c := range channels {
			out[c][f] = samples[f*channels+c]
		}
	}

	return out, nil
}

// SPDX-License-Identifier: EPL-2.0

package roqplay

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/roqplay/audio"
	"github.com/ik5/roqplay/formats/roq"
	"github.com/ik5/roqplay/utils"
)

// ResampleToMono16 resamples src to targetRate, downmixes it to one channel
// and collects the whole stream as 16-bit PCM. bufferSize is the number of
// samples pulled per read.
//
//	pcm16, rate, err := roqplay.ResampleToMono16(src, 8000, 4096)
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	// start with about two seconds, grown by append
	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}

// AudioTrackMono16 extracts the sound of a RoQ stream as mono 16-bit PCM at
// targetRate. Video chunks are decoded and dropped.
func AudioTrackMono16(r io.Reader, targetRate, bufferSize int, opts ...roq.Option) ([]int16, int, error) {
	src, err := roq.NewAudioSource(r, opts...)
	if err != nil {
		return nil, targetRate, err
	}
	defer src.Close()

	return ResampleToMono16(src, targetRate, bufferSize)
}

// SPDX-License-Identifier: EPL-2.0

package roq_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/roqplay/formats/roq"
	"github.com/ik5/roqplay/internal/roqtest"
)

func Example() {
	frame := &roqtest.FrameWriter{}
	for range 4 {
		frame.Mode(roqtest.SDL).Byte(0)
	}

	stream := roqtest.NewBuilder(30).
		VideoInfo(16, 16, false).
		Codebook([]roqtest.Cell2x2{roqtest.Solid(255, 128, 128)}, [][4]byte{{0, 0, 0, 0}}).
		Frame(0, 0, frame.Bytes()).
		SoundMono(0, []byte{1, 2, 3}).
		Reader()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dec, err := roq.NewRgba8888Decoder(stream, roq.WithLogger(logger))
	if err != nil {
		fmt.Println(err)
		return
	}

	for {
		ev, err := dec.Next()
		if err != nil {
			fmt.Println(err)
			return
		}

		switch ev.Kind {
		case roq.EventInitVideo:
			fmt.Printf("%v %dx%d\n", ev.Kind, dec.Width(), dec.Height())
		case roq.EventVideo:
			fmt.Printf("%v #%d first pixel 0x%08x\n", ev.Kind, dec.FrameIndex(), ev.Frame[0])
		case roq.EventAudio:
			fmt.Printf("%v %v\n", ev.Kind, ev.Samples)
		case roq.EventEndOfFile:
			fmt.Println(ev.Kind)
			return
		}
	}

	// Output:
	// InitVideo 16x16
	// Video #0 first pixel 0xffffffff
	// Audio [1 5 14]
	// EndOfFile
}

func ExamplePacer() {
	p := roq.NewPacer(30)
	for range 4 {
		fmt.Println(p.Tick(1.0 / 60))
	}

	// Output:
	// true
	// false
	// true
	// false
}

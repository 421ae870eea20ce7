// SPDX-License-Identifier: EPL-2.0

package roq

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	goaudio "github.com/go-audio/audio"
)

// EventKind tells what a call to Decoder.Next produced.
type EventKind int

const (
	// EventNone is the zero Kind, carried by the Event returned with an error.
	EventNone EventKind = iota
	EventEndOfFile
	EventInitVideo
	EventVideo
	EventAudio
	EventCustom
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventEndOfFile:
		return "EndOfFile"
	case EventInitVideo:
		return "InitVideo"
	case EventVideo:
		return "Video"
	case EventAudio:
		return "Audio"
	case EventCustom:
		return "Custom"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one caller-visible result of the decoder. Which fields are set
// depends on Kind:
//
//   - EventInitVideo: none, dimensions are available from the decoder
//   - EventVideo: Frame
//   - EventAudio: Channels and Samples
//   - EventCustom: Chunk and Data
//
// Frame, Samples and Data alias decoder buffers and are only valid until
// the next call to Next.
type Event[C Pixel] struct {
	Kind     EventKind
	Chunk    ChunkHeader
	Frame    []C
	Channels int
	Samples  []int16
	Data     []byte
}

// IntBuffer copies the samples of an audio event into a go-audio buffer
// tagged with the RoQ sample rate. It returns nil for other events.
func (e Event[C]) IntBuffer() *goaudio.IntBuffer {
	if e.Kind != EventAudio {
		return nil
	}

	data := make([]int, len(e.Samples))
	for i, s := range e.Samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: e.Channels,
			SampleRate:  SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}

type state uint8

const (
	stateUninitialized state = iota
	statePlaying
	stateFinished
)

type options struct {
	log *slog.Logger
}

// Option configures a Decoder.
type Option func(*options)

// WithLogger sets the logger for decode diagnostics. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Decoder is a pull-based RoQ stream decoder. It is not safe for concurrent
// use; one goroutine drives it by calling Next once per wanted event.
type Decoder[C Pixel] struct {
	cs     Colorspace[C]
	chunks *ChunkReader
	header FileHeader
	log    *slog.Logger
	state  state

	width  int
	height int
	alpha  bool

	codebook *Codebook[C]
	frames   reconstructor[C]
	sound    dpcm
}

// NewDecoder reads the stream header from r and returns a decoder producing
// pixels in colorspace cs.
func NewDecoder[C Pixel](r io.Reader, cs Colorspace[C], opts ...Option) (*Decoder[C], error) {
	o := options{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	chunks := NewChunkReader(r)
	header, err := chunks.ReadFileHeader()
	if err != nil {
		return nil, err
	}

	d := &Decoder[C]{
		cs:       cs,
		chunks:   chunks,
		header:   header,
		log:      o.log,
		codebook: newCodebook(cs),
	}
	d.frames.log = o.log

	return d, nil
}

// NewBgr565Decoder is NewDecoder with 16-bit RGB565 output.
func NewBgr565Decoder(r io.Reader, opts ...Option) (*Decoder[uint16], error) {
	return NewDecoder[uint16](r, Bgr565{}, opts...)
}

// NewRgba8888Decoder is NewDecoder with 32-bit RGBA output.
func NewRgba8888Decoder(r io.Reader, opts ...Option) (*Decoder[uint32], error) {
	return NewDecoder[uint32](r, Rgba8888{}, opts...)
}

func (d *Decoder[C]) Header() FileHeader        { return d.header }
func (d *Decoder[C]) Framerate() int            { return int(d.header.Framerate) }
func (d *Decoder[C]) Width() int                { return d.width }
func (d *Decoder[C]) Height() int               { return d.height }
func (d *Decoder[C]) Alpha() bool               { return d.alpha }
func (d *Decoder[C]) Colorspace() Colorspace[C] { return d.cs }

// Codebook exposes the current vector tables.
func (d *Decoder[C]) Codebook() *Codebook[C] { return d.codebook }

// FrameIndex is the index of the last decoded frame, counting from 0.
func (d *Decoder[C]) FrameIndex() int { return d.frames.index }

// Frame returns the last decoded frame, nil before video info is known.
func (d *Decoder[C]) Frame() []C {
	if d.state == stateUninitialized {
		return nil
	}
	return d.frames.frame()
}

// Next decodes chunks until one of them produces an event. Codebook chunks
// are consumed silently. After EventEndOfFile every further call returns
// EventEndOfFile again.
func (d *Decoder[C]) Next() (Event[C], error) {
	if d.state == stateFinished {
		return Event[C]{Kind: EventEndOfFile}, nil
	}

	for {
		c, err := d.chunks.Next()
		if errors.Is(err, io.EOF) {
			d.state = stateFinished
			d.log.Debug("roq: end of stream", "frames", d.frames.next)
			return Event[C]{Kind: EventEndOfFile}, nil
		}
		if err != nil {
			return Event[C]{}, err
		}

		d.log.Debug("roq: chunk",
			"id", fmt.Sprintf("0x%04x", c.ID),
			"size", c.Size,
			"arg", fmt.Sprintf("0x%04x", c.Arg))

		switch c.ID {
		case ChunkVideoInfo:
			if err := d.initVideo(c); err != nil {
				return Event[C]{}, err
			}
			return Event[C]{Kind: EventInitVideo, Chunk: c.ChunkHeader}, nil

		case ChunkCodebook:
			if err := d.codebook.unpack(c.Data, c.Size, c.Arg, d.alpha, d.cs); err != nil {
				return Event[C]{}, fmt.Errorf("codebook chunk: %w", err)
			}

		case ChunkVideoFrame:
			if d.state == stateUninitialized {
				return Event[C]{}, ErrNoVideoInfo
			}
			if err := d.frames.decode(c.Data, c.Arg, d.codebook); err != nil {
				return Event[C]{}, fmt.Errorf("frame %d: %w", d.frames.index, err)
			}
			return Event[C]{Kind: EventVideo, Chunk: c.ChunkHeader, Frame: d.frames.frame()}, nil

		case ChunkSoundMono:
			return Event[C]{
				Kind:     EventAudio,
				Chunk:    c.ChunkHeader,
				Channels: 1,
				Samples:  d.sound.mono(c.Data, c.Arg),
			}, nil

		case ChunkSoundStereo:
			return Event[C]{
				Kind:     EventAudio,
				Chunk:    c.ChunkHeader,
				Channels: 2,
				Samples:  d.sound.stereo(c.Data, c.Arg),
			}, nil

		default:
			d.log.Info("roq: unhandled chunk",
				"id", fmt.Sprintf("0x%04x", c.ID),
				"size", c.Size,
				"arg", c.Arg)
			return Event[C]{Kind: EventCustom, Chunk: c.ChunkHeader, Data: c.Data}, nil
		}
	}
}

func (d *Decoder[C]) initVideo(c Chunk) error {
	p := payload{data: c.Data}

	w, err := p.u16()
	if err != nil {
		return fmt.Errorf("video info chunk: %w", err)
	}
	h, err := p.u16()
	if err != nil {
		return fmt.Errorf("video info chunk: %w", err)
	}

	d.width = int(w)
	d.height = int(h)
	d.alpha = c.Arg != 0
	d.frames.alloc(d.width, d.height, d.cs.Default())
	d.state = statePlaying

	d.log.Debug("roq: video info", "width", d.width, "height", d.height, "alpha", d.alpha)

	return nil
}

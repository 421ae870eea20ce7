// SPDX-License-Identifier: EPL-2.0

// Package roqtest builds synthetic RoQ streams and audio sources for tests.
package roqtest

import (
	"bytes"
	"encoding/binary"
)

// Block modes as they appear in the mode words of a video chunk.
const (
	MOT byte = 0
	FCC byte = 1
	SDL byte = 2
	CCC byte = 3
)

// Cell2x2 is one 2x2 codebook entry before colorspace conversion. A is
// only written for streams with alpha.
type Cell2x2 struct {
	Y      [4]byte
	A      [4]byte
	Cb, Cr byte
}

// Solid returns a cell whose four pixels share one YCbCr value.
func Solid(y, cb, cr byte) Cell2x2 {
	return Cell2x2{
		Y:  [4]byte{y, y, y, y},
		A:  [4]byte{0xFF, 0xFF, 0xFF, 0xFF},
		Cb: cb,
		Cr: cr,
	}
}

// Builder assembles a RoQ stream chunk by chunk.
type Builder struct {
	buf   bytes.Buffer
	alpha bool
}

// NewBuilder starts a stream with the RoQ signature and framerate.
func NewBuilder(framerate uint16) *Builder {
	b := &Builder{}
	b.header(0x1084, 0xFFFFFFFF, framerate)
	return b
}

func (b *Builder) header(id uint16, size uint32, arg uint16) {
	var h [8]byte
	binary.LittleEndian.PutUint16(h[0:2], id)
	binary.LittleEndian.PutUint32(h[2:6], size)
	binary.LittleEndian.PutUint16(h[6:8], arg)
	b.buf.Write(h[:])
}

// Chunk appends a raw chunk.
func (b *Builder) Chunk(id, arg uint16, data []byte) *Builder {
	b.header(id, uint32(len(data)), arg)
	b.buf.Write(data)
	return b
}

// VideoInfo appends a 0x1001 chunk. Later codebooks are written with alpha
// samples when alpha is set.
func (b *Builder) VideoInfo(width, height uint16, alpha bool) *Builder {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint16(data[0:2], width)
	binary.LittleEndian.PutUint16(data[2:4], height)
	binary.LittleEndian.PutUint16(data[4:6], 8)

	var arg uint16
	if alpha {
		arg = 1
	}
	b.alpha = alpha

	return b.Chunk(0x1001, arg, data)
}

// CodebookData encodes cells the way a 0x1002 chunk carries them.
func CodebookData(cells []Cell2x2, quads [][4]byte, alpha bool) []byte {
	var data []byte
	for _, c := range cells {
		for i := range 4 {
			data = append(data, c.Y[i])
			if alpha {
				data = append(data, c.A[i])
			}
		}
		data = append(data, c.Cb, c.Cr)
	}
	for _, q := range quads {
		data = append(data, q[:]...)
	}
	return data
}

// Codebook appends a 0x1002 chunk. Counts of 256 are written as 0.
func (b *Builder) Codebook(cells []Cell2x2, quads [][4]byte) *Builder {
	arg := uint16(len(cells)&0xFF)<<8 | uint16(len(quads)&0xFF)
	return b.Chunk(0x1002, arg, CodebookData(cells, quads, b.alpha))
}

// Frame appends a 0x1011 chunk with mean motion (mx, my).
func (b *Builder) Frame(mx, my int8, data []byte) *Builder {
	return b.Chunk(0x1011, uint16(uint8(mx))<<8|uint16(uint8(my)), data)
}

// SoundMono appends a 0x1020 chunk.
func (b *Builder) SoundMono(seed uint16, deltas []byte) *Builder {
	return b.Chunk(0x1020, seed, deltas)
}

// SoundStereo appends a 0x1021 chunk, deltas interleaved left/right.
func (b *Builder) SoundStereo(seed uint16, deltas []byte) *Builder {
	return b.Chunk(0x1021, seed, deltas)
}

// Raw appends bytes as they are, for truncated streams.
func (b *Builder) Raw(p []byte) *Builder {
	b.buf.Write(p)
	return b
}

func (b *Builder) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

func (b *Builder) Reader() *bytes.Reader {
	return bytes.NewReader(b.Bytes())
}

// FrameWriter encodes the payload of a video chunk. Modes and argument
// bytes must be written in the order the decoder consumes them; mode words
// are opened at the current position whenever the previous one is full.
type FrameWriter struct {
	data []byte
	slot int
	used uint
	open bool
}

// Mode appends one 2-bit block mode.
func (w *FrameWriter) Mode(m byte) *FrameWriter {
	if !w.open || w.used == 16 {
		w.slot = len(w.data)
		w.data = append(w.data, 0, 0)
		w.used = 0
		w.open = true
	}

	w.used += 2
	word := binary.LittleEndian.Uint16(w.data[w.slot:])
	word |= uint16(m&0x03) << (16 - w.used)
	binary.LittleEndian.PutUint16(w.data[w.slot:], word)

	return w
}

// Byte appends argument bytes: motion bytes or codebook indices.
func (w *FrameWriter) Byte(p ...byte) *FrameWriter {
	w.data = append(w.data, p...)
	return w
}

func (w *FrameWriter) Bytes() []byte {
	return w.data
}

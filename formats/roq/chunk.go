// SPDX-License-Identifier: EPL-2.0

package roq

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Signature is the magic every RoQ stream starts with.
const Signature uint16 = 0x1084

// Chunk ids understood by the decoder.
const (
	ChunkVideoInfo   uint16 = 0x1001
	ChunkCodebook    uint16 = 0x1002
	ChunkVideoFrame  uint16 = 0x1011
	ChunkSoundMono   uint16 = 0x1020
	ChunkSoundStereo uint16 = 0x1021
)

// HeaderSize is the size of both the file header and every chunk header.
const HeaderSize = 8

// ChunkHeader describes one chunk: 16-bit id, 32-bit payload size and a
// 16-bit argument whose meaning depends on the id.
type ChunkHeader struct {
	ID   uint16
	Size uint32
	Arg  uint16
}

// Chunk is a header together with its payload.
type Chunk struct {
	ChunkHeader
	Data []byte
}

// FileHeader is the fixed header at the start of a stream.
type FileHeader struct {
	Magic     uint16
	Size      uint32
	Framerate uint16
}

// ChunkReader splits a byte source into chunks. It keeps no state besides
// the stream position and a payload buffer that is reused between chunks.
type ChunkReader struct {
	r   io.Reader
	hdr [HeaderSize]byte
	buf []byte
}

func NewChunkReader(r io.Reader) *ChunkReader {
	return &ChunkReader{r: r}
}

// ReadFileHeader reads the stream header. It must be called once, before Next.
func (c *ChunkReader) ReadFileHeader() (FileHeader, error) {
	if _, err := io.ReadFull(c.r, c.hdr[:]); err != nil {
		return FileHeader{}, fmt.Errorf("%w: reading file header: %w", ErrIO, err)
	}

	fh := FileHeader{
		Magic:     binary.LittleEndian.Uint16(c.hdr[0:2]),
		Size:      binary.LittleEndian.Uint32(c.hdr[2:6]),
		Framerate: binary.LittleEndian.Uint16(c.hdr[6:8]),
	}

	if fh.Magic != Signature {
		return fh, ErrNotRoQFile
	}

	return fh, nil
}

// Next reads the next chunk. A header cut short, including an empty read,
// is the clean end of the stream and returns io.EOF. A payload cut short
// is an error.
//
// The returned Data is only valid until the next call.
func (c *ChunkReader) Next() (Chunk, error) {
	if _, err := io.ReadFull(c.r, c.hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Chunk{}, io.EOF
		}
		return Chunk{}, fmt.Errorf("%w: reading chunk header: %w", ErrIO, err)
	}

	hdr := ChunkHeader{
		ID:   binary.LittleEndian.Uint16(c.hdr[0:2]),
		Size: binary.LittleEndian.Uint32(c.hdr[2:6]),
		Arg:  binary.LittleEndian.Uint16(c.hdr[6:8]),
	}

	size := int(hdr.Size)
	if cap(c.buf) < size {
		c.buf = make([]byte, size)
	}
	c.buf = c.buf[:size]

	if _, err := io.ReadFull(c.r, c.buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Chunk{}, fmt.Errorf("%w: reading payload of chunk 0x%04x (%d bytes): %w",
			ErrIO, hdr.ID, hdr.Size, err)
	}

	return Chunk{ChunkHeader: hdr, Data: c.buf}, nil
}

// payload is a forward-only cursor over a chunk payload. Reads past the end
// fail with io.ErrUnexpectedEOF, the same way a short read of the source does.
type payload struct {
	data []byte
	pos  int
}

func (p *payload) u8() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, fmt.Errorf("%w: payload ended at byte %d: %w", ErrIO, p.pos, io.ErrUnexpectedEOF)
	}
	b := p.data[p.pos]
	p.pos++
	return b, nil
}

func (p *payload) u16() (uint16, error) {
	if len(p.data)-p.pos < 2 {
		return 0, fmt.Errorf("%w: payload ended at byte %d: %w", ErrIO, p.pos, io.ErrUnexpectedEOF)
	}
	v := binary.LittleEndian.Uint16(p.data[p.pos:])
	p.pos += 2
	return v, nil
}

func (p *payload) read(dst []byte) error {
	if len(p.data)-p.pos < len(dst) {
		return fmt.Errorf("%w: payload ended at byte %d: %w", ErrIO, p.pos, io.ErrUnexpectedEOF)
	}
	p.pos += copy(dst, p.data[p.pos:])
	return nil
}

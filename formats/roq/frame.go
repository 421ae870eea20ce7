// SPDX-License-Identifier: EPL-2.0

package roq

import "log/slog"

const (
	macroblockSize = 16
	blockSize      = 8
	subblockSize   = 4
)

type blockMode uint8

const (
	modeMOT blockMode = iota // keep the pixels of the previous frame
	modeFCC                  // motion compensated copy
	modeSDL                  // one codebook cell
	modeCCC                  // subdivide
)

// modeCursor hands out 2-bit block modes from 16-bit little-endian words,
// most significant pair first.
type modeCursor struct {
	bits uint16
	left uint8
}

func (m *modeCursor) next(p *payload) (blockMode, error) {
	if m.left == 0 {
		w, err := p.u16()
		if err != nil {
			return 0, err
		}
		m.bits = w
		m.left = 16
	}

	m.left -= 2
	return blockMode(m.bits>>m.left) & 0x03, nil
}

// motionVector decodes the displacement packed in one FCC byte, biased by
// the per-chunk mean motion (mx, my).
func motionVector(b byte, mx, my int) (dx, dy int) {
	return 8 - int(b>>4) - mx, 8 - int(b&0x0F) - my
}

// reconstructor owns the two frame buffers and rebuilds a frame from one
// VQ chunk. Buffer roles alternate with the parity of the frame index.
type reconstructor[C Pixel] struct {
	width  int
	height int
	buf    [2][]C
	index  int // index of the last decoded frame
	next   int

	log *slog.Logger

	// scratch for the chunk being decoded
	cur   []C
	prev  []C
	cb    *Codebook[C]
	p     payload
	modes modeCursor
	mx    int
	my    int
}

func (f *reconstructor[C]) alloc(width, height int, def C) {
	f.width = width
	f.height = height
	f.index = 0
	f.next = 0

	n := width * height
	for i := range f.buf {
		f.buf[i] = make([]C, n)
		if def != 0 {
			for j := range f.buf[i] {
				f.buf[i][j] = def
			}
		}
	}
}

// frame returns the buffer holding the last decoded frame.
func (f *reconstructor[C]) frame() []C {
	return f.buf[f.index&1]
}

func (f *reconstructor[C]) decode(data []byte, arg uint16, cb *Codebook[C]) error {
	f.index = f.next
	f.next++

	f.cur = f.buf[f.index&1]
	f.prev = f.buf[(f.index+1)&1]

	// Frame 0 never wrote into the second buffer, so frame 1 starts from a
	// full copy instead of relying on MOT blocks.
	if f.index == 1 {
		copy(f.cur, f.prev)
	}

	f.cb = cb
	f.p = payload{data: data}
	f.modes = modeCursor{}
	f.mx = int(int8(arg >> 8))
	f.my = int(int8(arg))

	for mby := range f.height / macroblockSize {
		for mbx := range f.width / macroblockSize {
			for blk := range 4 {
				x := mbx*macroblockSize + (blk%2)*blockSize
				y := mby*macroblockSize + (blk/2)*blockSize

				if err := f.block8(x, y); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (f *reconstructor[C]) block8(x, y int) error {
	mode, err := f.modes.next(&f.p)
	if err != nil {
		return err
	}

	switch mode {
	case modeMOT:
	case modeFCC:
		b, err := f.p.u8()
		if err != nil {
			return err
		}
		f.motion(x, y, blockSize, b)
	case modeSDL:
		idx, err := f.p.u8()
		if err != nil {
			return err
		}
		f.upsample(x, y, &f.cb.Cells4x4[idx])
	case modeCCC:
		for sub := range 4 {
			sx := x + (sub%2)*subblockSize
			sy := y + (sub/2)*subblockSize

			if err := f.block4(sx, sy); err != nil {
				return err
			}
		}
	}

	return nil
}

func (f *reconstructor[C]) block4(x, y int) error {
	mode, err := f.modes.next(&f.p)
	if err != nil {
		return err
	}

	switch mode {
	case modeMOT:
	case modeFCC:
		b, err := f.p.u8()
		if err != nil {
			return err
		}
		f.motion(x, y, subblockSize, b)
	case modeSDL:
		idx, err := f.p.u8()
		if err != nil {
			return err
		}
		f.put4x4(x, y, &f.cb.Cells4x4[idx])
	case modeCCC:
		for q := range 4 {
			idx, err := f.p.u8()
			if err != nil {
				return err
			}
			f.put2x2(x+(q%2)*2, y+(q/2)*2, &f.cb.Cells2x2[idx])
		}
	}

	return nil
}

// motion copies a size x size block from the previous frame. A source block
// that leaves the frame is logged and skipped.
func (f *reconstructor[C]) motion(x, y, size int, b byte) {
	dx, dy := motionVector(b, f.mx, f.my)
	sx, sy := x+dx, y+dy

	if sx < 0 || sx > f.width-size || sy < 0 || sy > f.height-size {
		f.log.Warn("motion vector out of bounds",
			"frame", f.index,
			"x", x, "y", y,
			"src_x", sx, "src_y", sy,
			"width", f.width, "height", f.height)
		return
	}

	w := f.width
	for row := range size {
		dst := (y+row)*w + x
		src := (sy+row)*w + sx
		copy(f.cur[dst:dst+size], f.prev[src:src+size])
	}
}

// upsample scales a 4x4 cell to 8x8, each cell pixel covering 2x2.
func (f *reconstructor[C]) upsample(x, y int, cell *[16]C) {
	w := f.width
	for i, px := range cell {
		off := (y+(i/4)*2)*w + x + (i%4)*2
		f.cur[off] = px
		f.cur[off+1] = px
		f.cur[off+w] = px
		f.cur[off+w+1] = px
	}
}

func (f *reconstructor[C]) put4x4(x, y int, cell *[16]C) {
	w := f.width
	for row := range 4 {
		off := (y+row)*w + x
		copy(f.cur[off:off+4], cell[row*4:row*4+4])
	}
}

func (f *reconstructor[C]) put2x2(x, y int, cell *[4]C) {
	off := y*f.width + x
	f.cur[off] = cell[0]
	f.cur[off+1] = cell[1]
	f.cur[off+f.width] = cell[2]
	f.cur[off+f.width+1] = cell[3]
}

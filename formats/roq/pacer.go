// SPDX-License-Identifier: EPL-2.0

package roq

// pacerEpsilon absorbs the rounding of summing fractional tick lengths.
const pacerEpsilon = 1e-9

// Pacer decides on which host ticks a player should pull the next video
// frame so playback follows the stream framerate. The decoder does not pace
// itself.
type Pacer struct {
	period float64
	timer  float64
}

// NewPacer returns a pacer for framerate frames per second. A framerate of
// zero makes every tick pull a frame.
func NewPacer(framerate int) *Pacer {
	p := &Pacer{}
	if framerate > 0 {
		p.period = 1 / float64(framerate)
	}
	return p
}

// Tick reports whether a frame is due on this tick and then advances the
// pacer by dt seconds. The first tick is always due.
func (p *Pacer) Tick(dt float64) bool {
	due := p.timer <= pacerEpsilon
	if due {
		p.timer += p.period
		if p.timer < 0 {
			// more than a frame behind, drop the backlog
			p.timer = p.period
		}
	}

	p.timer -= dt
	return due
}

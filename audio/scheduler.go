// SPDX-License-Identifier: EPL-2.0

package audio

// Scheduler assigns start times to consecutive audio blocks so they play
// back to back. Every block is queued Lookahead seconds after the point the
// previous blocks end, which leaves the mixer time to pick it up.
type Scheduler struct {
	rate      int
	lookahead float64
	clock     float64
}

// NewScheduler returns a scheduler for blocks at rate Hz starting at start
// seconds on the host clock.
func NewScheduler(rate int, start, lookahead float64) *Scheduler {
	return &Scheduler{
		rate:      rate,
		lookahead: lookahead,
		clock:     start,
	}
}

// Schedule returns the start time of a block of frames sample frames and
// moves the clock past it.
func (s *Scheduler) Schedule(frames int) float64 {
	t := s.clock + s.lookahead
	if s.rate > 0 {
		s.clock += float64(frames) / float64(s.rate)
	}
	return t
}

// Clock is the host time at which all scheduled blocks have been consumed,
// not counting the lookahead.
func (s *Scheduler) Clock() float64 { return s.clock }

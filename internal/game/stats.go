package game

import "time"

// frameStats keeps the timestamps of the last frames in a ring buffer so the
// overlay can show a frame rate.
type frameStats struct {
	times     []time.Time
	nextIndex int
	filled    bool
	total     uint64
}

func newFrameStats(ringSize int) *frameStats {
	return &frameStats{times: make([]time.Time, ringSize)}
}

func (s *frameStats) record(now time.Time) {
	s.times[s.nextIndex] = now
	s.nextIndex++
	if s.nextIndex >= len(s.times) {
		s.nextIndex = 0
		s.filled = true
	}
	s.total++
}

// fps is the average rate over the buffered frames.
func (s *frameStats) fps() float64 {
	n := s.nextIndex
	oldest := 0
	if s.filled {
		n = len(s.times)
		oldest = s.nextIndex
	}
	if n < 2 {
		return 0
	}
	newest := s.nextIndex - 1
	if newest < 0 {
		newest = len(s.times) - 1
	}
	span := s.times[newest].Sub(s.times[oldest])
	if span <= 0 {
		return 0
	}
	return float64(n-1) / span.Seconds()
}

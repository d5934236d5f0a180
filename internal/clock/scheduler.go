package clock

import "time"

// MinPeriod is the shortest period a Timer accepts.
const MinPeriod = time.Millisecond

// Scheduler runs periodic callbacks on the caller's frame loop. Time only
// moves when the owner calls Advance, so callbacks never race the frame.
type Scheduler struct {
	now    time.Duration
	timers []*Timer
	nextID uint64
}

// Timer is the handle of one periodic callback.
type Timer struct {
	id      uint64
	period  time.Duration
	next    time.Duration
	fn      func()
	stopped bool
	fires   int
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every schedules fn every period, first firing one period from now.
func (s *Scheduler) Every(period time.Duration, fn func()) *Timer {
	if period < MinPeriod {
		period = MinPeriod
	}
	s.nextID++
	t := &Timer{id: s.nextID, period: period, next: s.now + period, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt and fires due timers. A timer that
// fell several periods behind fires once and skips the missed periods, the
// way a throttled browser interval does. Callbacks may stop or create timers.
// It returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	s.now += dt

	fired := 0
	due := make([]*Timer, len(s.timers))
	copy(due, s.timers)
	for _, t := range due {
		if t.stopped || t.next > s.now {
			continue
		}
		for t.next <= s.now {
			t.next += t.period
		}
		t.fires++
		fired++
		if t.fn != nil {
			t.fn()
		}
	}
	s.compact()
	return fired
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Active returns the number of timers that have not been stopped.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *Scheduler) Now() time.Duration { return s.now }

// Stop cancels the timer. It reports whether the timer was still active.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (t *Timer) Active() bool { return t != nil && !t.stopped }

func (t *Timer) Period() time.Duration { return t.period }

// Fires returns how many times the callback has run.
func (t *Timer) Fires() int { return t.fires }

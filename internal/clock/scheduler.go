// Package clock provides simulated game time and repeating timers.
//
// Time only moves when the owner calls Advance, once per simulation tick, so
// timers fire synchronously on the tick goroutine and tests can step time
// exactly.
package clock

import "time"

// Timer is a repeating event registered with a Scheduler.
type Timer struct {
	interval  time.Duration
	next      time.Duration
	fn        func()
	seq       uint64
	cancelled bool
}

// Cancel stops the timer. Calling it more than once, or on a nil timer, is safe.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool {
	return t != nil && !t.cancelled
}

// Scheduler owns the simulated clock and its timers.
// It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	timers []*Timer
	seq    uint64
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the elapsed simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers fn to run each interval, first at Now()+interval.
// A non-positive interval yields a timer that never fires.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{
		interval: interval,
		next:     s.now + interval,
		fn:       fn,
		seq:      s.seq,
	}
	if interval <= 0 {
		t.cancelled = true
		return t
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that comes due,
// in due-time order. A timer whose interval fits several times into d fires
// once per elapsed interval. Callbacks may cancel timers or register new ones;
// new timers are measured from the time at which they were registered.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.interval
		t.fn()
	}

	s.now = target
	s.compact()
}

// Pending returns the number of active timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Active() {
			n++
		}
	}
	return n
}

// nextDue returns the active timer with the earliest due time not after
// target. Ties go to the timer registered first.
func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.cancelled || t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

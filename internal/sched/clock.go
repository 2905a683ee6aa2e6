// Package sched provides a deterministic virtual clock with cancelable
// one-shot and periodic tasks. Nothing here reads wall time: callers move the
// clock forward explicitly with Advance, which makes simulations reproducible
// and lets tests step through time without sleeping.
//
// A Clock is not safe for concurrent use.
package sched

import "time"

// Clock keeps the current simulated time and the set of scheduled tasks.
type Clock struct {
	now   time.Duration
	tasks []*Task
	seq   uint64
}

// Task is a callback scheduled on a Clock.
type Task struct {
	clock    *Clock
	fn       func(dt time.Duration)
	interval time.Duration // Zero for one-shot tasks
	delay    time.Duration // Original delay of a one-shot task
	next     time.Duration // Absolute clock time of the next firing
	seq      uint64        // Creation order, breaks deadline ties
	active   bool
}

// NewClock creates a clock positioned at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current simulated time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Every schedules fn to run every interval, first firing one interval from now.
// fn receives the interval as its elapsed time. Non-positive intervals are
// rejected by returning an inactive task.
func (c *Clock) Every(interval time.Duration, fn func(dt time.Duration)) *Task {
	if interval <= 0 {
		return &Task{}
	}
	return c.add(&Task{
		fn:       fn,
		interval: interval,
		next:     c.now + interval,
	})
}

// After schedules fn to run once, delay from now.
// fn receives the delay as its elapsed time.
func (c *Clock) After(delay time.Duration, fn func(dt time.Duration)) *Task {
	if delay < 0 {
		delay = 0
	}
	return c.add(&Task{
		fn:    fn,
		delay: delay,
		next:  c.now + delay,
	})
}

func (c *Clock) add(t *Task) *Task {
	c.seq++
	t.clock = c
	t.seq = c.seq
	t.active = true
	c.tasks = append(c.tasks, t)
	return t
}

// Advance moves the clock forward by d, firing every task that falls due in
// deadline order. Tasks cancelled by an earlier callback in the same Advance
// do not fire. Returns the number of callbacks run.
func (c *Clock) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := c.now + d
	fired := 0

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}

		c.now = t.next
		dt := t.interval
		if t.interval > 0 {
			t.next += t.interval
		} else {
			t.active = false
			dt = t.delay
		}

		t.fn(dt)
		fired++
	}

	c.now = target
	c.compact()
	return fired
}

// Pending returns the number of active tasks.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.tasks {
		if t.active {
			n++
		}
	}
	return n
}

// CancelAll stops every task on the clock.
func (c *Clock) CancelAll() {
	for _, t := range c.tasks {
		t.active = false
	}
	c.tasks = c.tasks[:0]
}

// nextDue returns the active task with the earliest deadline not after target.
func (c *Clock) nextDue(target time.Duration) *Task {
	var best *Task
	for _, t := range c.tasks {
		if !t.active || t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops cancelled and finished tasks.
func (c *Clock) compact() {
	live := c.tasks[:0]
	for _, t := range c.tasks {
		if t.active {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.tasks); i++ {
		c.tasks[i] = nil
	}
	c.tasks = live
}

// Cancel stops the task. Safe to call more than once and on a nil task.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.active = false
}

// Active reports whether the task is still scheduled.
func (t *Task) Active() bool {
	return t != nil && t.active
}

// Remaining returns the time left until the task next fires, or zero if the
// task is not active.
func (t *Task) Remaining() time.Duration {
	if !t.Active() {
		return 0
	}
	return t.next - t.clock.now
}

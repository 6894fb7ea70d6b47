package core

import "time"

// PassTiming records how long one generation pass took.
type PassTiming struct {
	Name     string
	Duration time.Duration
}

// PassTimer measures the wall-clock duration of sequential pipeline passes.
type PassTimer struct {
	timings []PassTiming
	current string
	started time.Time
}

// NewPassTimer returns an empty timer.
func NewPassTimer() *PassTimer {
	return &PassTimer{}
}

// Start begins timing the named pass, finishing any pass still in progress.
func (t *PassTimer) Start(name string) {
	if t == nil {
		return
	}
	t.Stop()
	t.current = name
	t.started = time.Now()
}

// Stop finishes the pass in progress, if any, and records its duration.
func (t *PassTimer) Stop() {
	if t == nil || t.current == "" {
		return
	}
	t.timings = append(t.timings, PassTiming{Name: t.current, Duration: time.Since(t.started)})
	t.current = ""
}

// Timings returns the recorded passes in execution order.
func (t *PassTimer) Timings() []PassTiming {
	if t == nil {
		return nil
	}
	return t.timings
}

// Total sums all recorded pass durations.
func (t *PassTimer) Total() time.Duration {
	if t == nil {
		return 0
	}
	var total time.Duration
	for _, p := range t.timings {
		total += p.Duration
	}
	return total
}

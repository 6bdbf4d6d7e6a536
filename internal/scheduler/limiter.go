package scheduler

import "time"

// minimum lead before the limiter sleeps, shorter sleeps are not accurate
const limiterSlack = 2 * time.Millisecond

// limiter caps the number of steps per second by sleeping whenever the step
// count runs ahead of the wall clock.
type limiter struct {
	ips   int
	begin time.Time
	count uint64
}

func (l *limiter) start(now time.Time) {
	l.begin = now
	l.count = 0
}

func (l *limiter) wait() {
	if l.ips <= 0 {
		return
	}

	l.count++
	due := l.begin.Add(time.Duration(l.count) * time.Second / time.Duration(l.ips))
	if lead := time.Until(due); lead > limiterSlack {
		time.Sleep(lead)
	}
}

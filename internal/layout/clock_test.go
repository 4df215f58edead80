// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout_test

import (
	"sync"
	"time"

	"github.com/taibuivan/nolfolio/internal/layout"
)

// fakeClock fires timers only when advanced. Callbacks run on the caller of Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (timer *fakeTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()

	wasPending := !timer.stopped && !timer.fired
	timer.stopped = true
	return wasPending
}

func (clock *fakeClock) AfterFunc(d time.Duration, f func()) layout.Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	timer := &fakeTimer{clock: clock, at: clock.now + d, f: f}
	clock.timers = append(clock.timers, timer)
	return timer
}

// Advance fires every timer due within d, earliest first.
func (clock *fakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	target := clock.now + d
	clock.mu.Unlock()

	for {
		clock.mu.Lock()
		var next *fakeTimer
		for _, timer := range clock.timers {
			if timer.stopped || timer.fired || timer.at > target {
				continue
			}
			if next == nil || timer.at < next.at {
				next = timer
			}
		}
		if next == nil {
			clock.now = target
			clock.mu.Unlock()
			return
		}
		next.fired = true
		clock.now = next.at
		clock.mu.Unlock()

		next.f()
	}
}

// armed counts timers that have neither fired nor been stopped.
func (clock *fakeClock) armed() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	count := 0
	for _, timer := range clock.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

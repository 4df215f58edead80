// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

import (
	"context"
	"sync"
	"time"
)

// # Timers

// Timer is a pending callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. [SystemClock] wraps the time package.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

const (
	firstCycleBase    = 8 * time.Second
	firstCycleStagger = 7 * time.Second
	firstCycleJitter  = 3 * time.Second
	cycleMin          = 12 * time.Second
	cycleSpread       = 13 * time.Second
)

// FirstDelay staggers the first swap of each slot: 8s + slot×7s + [0, 3s).
func FirstDelay(slot int, rng Rand) time.Duration {
	return firstCycleBase + time.Duration(slot)*firstCycleStagger + jitter(rng, firstCycleJitter)
}

// NextDelay is the interval between later swaps: [12s, 25s).
func NextDelay(rng Rand) time.Duration {
	return cycleMin + jitter(rng, cycleSpread)
}

func jitter(rng Rand, spread time.Duration) time.Duration {
	return time.Duration(rng.Float64() * float64(spread))
}

// # Cycler

// Swap reports that Slot now shows pool entry Index instead of Previous.
type Swap struct {
	Slot     int `json:"slot"`
	Previous int `json:"previous"`
	Index    int `json:"index"`
}

// Cycler owns one timer per scatter slot and re-rolls the slot's content
// each time it fires. Positions never change.
//
// # Concurrency
//
// Timers fire on their own goroutines; all state is guarded by one mutex and
// onSwap is called outside it. [Cycler.Close] stops every timer and waits for
// running callbacks, after which onSwap is never called again. onSwap must
// not call Close itself.
type Cycler struct {
	mu      sync.Mutex
	pool    int
	indices []int
	rng     Rand
	clock   Clock
	timers  map[int]Timer
	onSwap  func(Swap)
	closed  bool
	running sync.WaitGroup
	done    chan struct{}
}

// NewCycler arms a timer per slot of indices, which index into a pool of
// poolSize items. The cycler closes itself when ctx ends.
func NewCycler(ctx context.Context, poolSize int, indices []int, rng Rand, clock Clock, onSwap func(Swap)) *Cycler {
	if clock == nil {
		clock = SystemClock
	}

	cycler := &Cycler{
		pool:    poolSize,
		indices: append([]int(nil), indices...),
		rng:     rng,
		clock:   clock,
		timers:  make(map[int]Timer, len(indices)),
		onSwap:  onSwap,
		done:    make(chan struct{}),
	}

	cycler.mu.Lock()
	if !cycler.saturated() {
		for slot := range cycler.indices {
			cycler.arm(slot, FirstDelay(slot, rng))
		}
	}
	cycler.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			cycler.Close()
		case <-cycler.done:
		}
	}()

	return cycler
}

// Indices returns the pool entry shown in each slot.
func (cycler *Cycler) Indices() []int {
	cycler.mu.Lock()
	defer cycler.mu.Unlock()

	return append([]int(nil), cycler.indices...)
}

// Pending returns the number of armed timers.
func (cycler *Cycler) Pending() int {
	cycler.mu.Lock()
	defer cycler.mu.Unlock()

	return len(cycler.timers)
}

// Close stops every timer and waits for in-flight swaps. It is idempotent.
func (cycler *Cycler) Close() {
	cycler.mu.Lock()
	if cycler.closed {
		cycler.mu.Unlock()
		return
	}
	cycler.closed = true

	for slot, timer := range cycler.timers {
		timer.Stop()
		delete(cycler.timers, slot)
	}
	close(cycler.done)
	cycler.mu.Unlock()

	cycler.running.Wait()
}

// arm must be called with mu held.
func (cycler *Cycler) arm(slot int, delay time.Duration) {
	cycler.timers[slot] = cycler.clock.AfterFunc(delay, func() { cycler.fire(slot) })
}

func (cycler *Cycler) fire(slot int) {
	cycler.mu.Lock()
	if cycler.closed {
		cycler.mu.Unlock()
		return
	}
	cycler.running.Add(1)
	defer cycler.running.Done()

	swap, changed := cycler.reroll(slot)
	if cycler.saturated() {
		delete(cycler.timers, slot)
	} else {
		cycler.arm(slot, NextDelay(cycler.rng))
	}
	cycler.mu.Unlock()

	if changed && cycler.onSwap != nil {
		cycler.onSwap(swap)
	}
}

// saturated reports whether every pool entry is on screen exactly once, in
// which case no reroll can change a slot. Must be called with mu held.
func (cycler *Cycler) saturated() bool {
	if len(cycler.indices) != cycler.pool {
		return false
	}

	seen := make(map[int]bool, cycler.pool)
	for _, index := range cycler.indices {
		if index < 0 || index >= cycler.pool || seen[index] {
			return false
		}
		seen[index] = true
	}
	return true
}

// reroll picks a pool entry not shown in any other slot; the slot's own
// current entry stays eligible. Must be called with mu held.
func (cycler *Cycler) reroll(slot int) (Swap, bool) {
	current := cycler.indices[slot]

	shownElsewhere := make(map[int]bool, len(cycler.indices))
	for other, index := range cycler.indices {
		if other != slot {
			shownElsewhere[index] = true
		}
	}

	available := make([]int, 0, cycler.pool)
	for index := range cycler.pool {
		if !shownElsewhere[index] || index == current {
			available = append(available, index)
		}
	}

	if len(available) == 0 {
		return Swap{}, false
	}

	next := available[cycler.rng.IntN(len(available))]
	cycler.indices[slot] = next

	return Swap{Slot: slot, Previous: current, Index: next}, next != current
}

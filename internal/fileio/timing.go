package fileio

import (
	"context"
	"time"
)

type timingKey struct{}

type timingInfo struct {
	op    Op
	start time.Time
}

// StartTiming marks the start of an op; pass the returned context to
// EndTiming once it finishes.
func (ft *Tracker) StartTiming(op Op) context.Context {
	ctx := context.Background()
	if ft == nil {
		return ctx
	}
	return context.WithValue(ctx, timingKey{}, timingInfo{op: op, start: ft.now()})
}

func (ft *Tracker) EndTiming(ctx context.Context) {
	if ft == nil {
		return
	}
	info, ok := ctx.Value(timingKey{}).(timingInfo)
	if !ok {
		return
	}
	duration := ft.now().Sub(info.start)

	ft.mu.Lock()
	defer ft.mu.Unlock()
	if !ft.enabled {
		return
	}
	ft.timings[info.op] = append(ft.timings[info.op], duration)
}

// Timings returns the recorded durations of op, oldest first.
func (ft *Tracker) Timings(op Op) []time.Duration {
	if ft == nil {
		return nil
	}

	ft.mu.RLock()
	defer ft.mu.RUnlock()

	timings := ft.timings[op]
	if timings == nil {
		return nil
	}
	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (ft *Tracker) AverageTime(op Op) time.Duration {
	timings := ft.Timings(op)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range timings {
		total += d
	}
	return total / time.Duration(len(timings))
}

package simulation

import (
	"math/rand"
	"time"
)

// flushBatchSize bounds the number of points buffered before handing them to
// the sink.
const flushBatchSize = 1000

// TimedSample is a sample stamped with its simulated emission time.
type TimedSample struct {
	Time time.Time
	Sample
}

// GenerateHistory runs one voyage over [start, end) emitting a sample every
// StepMinutes, flushing buffered points to sink in batches. A sink error
// aborts the run; batches already flushed stay flushed.
func GenerateHistory(start, end time.Time, p Params, ports []Port, rng *rand.Rand, sink func([]TimedSample) error) error {
	v := NewVoyage(rng, p, ports)
	step := time.Duration(p.StepMinutes) * time.Minute

	batch := make([]TimedSample, 0, flushBatchSize)
	for now := start; now.Before(end); now = now.Add(step) {
		var s Sample
		v, s = Step(rng, p, ports, v)
		batch = append(batch, TimedSample{Time: now, Sample: s})

		if len(batch) >= flushBatchSize {
			if err := sink(batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		return sink(batch)
	}
	return nil
}

package simulation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoyageStartsDockedAtKnownPort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := DefaultParams()

	v := NewVoyage(rng, p, DefaultPorts)

	assert.Equal(t, AtPort, v.State)
	assert.GreaterOrEqual(t, v.MinutesLeft, p.DwellMin)
	assert.LessOrEqual(t, v.MinutesLeft, p.DwellMax)
	assert.NotEqual(t, v.PortIdx, v.NextPortIdx)
}

func TestTripProgressMonotonicUntilArrival(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := DefaultParams()

	v := NewVoyage(rng, p, DefaultPorts)
	lastProgress := 0.0
	sawSea := false
	sawArrival := false

	// enough steps for several complete voyages at 30-minute resolution
	for i := 0; i < 5000; i++ {
		prev := v
		v, _ = Step(rng, p, DefaultPorts, v)

		if v.State == AtSea {
			sawSea = true
			require.GreaterOrEqual(t, v.TripProgress, lastProgress,
				"progress went backwards at step %d", i)
			lastProgress = v.TripProgress
		}
		if prev.State == AtSea && v.State == AtPort {
			sawArrival = true
			require.Equal(t, 1.0, prev.TripProgress,
				"arrived at step %d before progress reached 1.0", i)
			lastProgress = 0
		}
	}
	require.True(t, sawSea)
	require.True(t, sawArrival)
}

func TestArrivalPicksDifferentDestination(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := DefaultParams()

	v := NewVoyage(rng, p, DefaultPorts)
	for i := 0; i < 5000; i++ {
		v, _ = Step(rng, p, DefaultPorts, v)
		require.NotEqual(t, v.PortIdx, v.NextPortIdx)
	}
}

func TestStopPreservesVoyage(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := DefaultParams()

	stopped := VoyageState{
		State:        Stopped,
		PortIdx:      0,
		NextPortIdx:  2,
		MinutesLeft:  0,
		TripDuration: 12 * 60,
		TripProgress: 0.5,
	}

	resumed, s := Step(rng, p, DefaultPorts, stopped)

	assert.Equal(t, AtSea, resumed.State)
	assert.Equal(t, 2, resumed.NextPortIdx)
	assert.Greater(t, resumed.TripProgress, 0.5)
	assert.Greater(t, s.Speed, 0.0)
}

func TestStoppedEmitsDeadEngines(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := DefaultParams()

	stopped := VoyageState{
		State:        Stopped,
		PortIdx:      0,
		NextPortIdx:  2,
		MinutesLeft:  p.StopMinutes,
		TripDuration: 12 * 60,
		TripProgress: 0.25,
	}

	next, s := Step(rng, p, DefaultPorts, stopped)

	assert.Equal(t, Stopped, next.State)
	assert.Zero(t, s.RPM)
	assert.Zero(t, s.Speed)
	assert.Zero(t, s.Fuel)
	// frozen at the progress where the stop began
	wantLat, wantLon := Interpolate(DefaultPorts[0], DefaultPorts[2], 0.25)
	assert.Equal(t, wantLat, s.Lat)
	assert.Equal(t, wantLon, s.Lon)
	assert.Equal(t, 0, next.MinutesSinceStop)
}

func TestAtPortEmission(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	p := DefaultParams()

	docked := VoyageState{
		State:       AtPort,
		PortIdx:     1,
		NextPortIdx: 2,
		MinutesLeft: 6 * 60,
	}

	next, s := Step(rng, p, DefaultPorts, docked)

	assert.Equal(t, AtPort, next.State)
	assert.Equal(t, docked.MinutesLeft-p.StepMinutes, next.MinutesLeft)
	assert.Zero(t, s.Speed)
	assert.GreaterOrEqual(t, s.RPM, 0.0)
	assert.LessOrEqual(t, s.RPM, 200.0)
	assert.GreaterOrEqual(t, s.Fuel, 2.0)
	assert.LessOrEqual(t, s.Fuel, 10.0)
	assert.InDelta(t, DefaultPorts[1].Lat, s.Lat, 0.0002)
	assert.InDelta(t, DefaultPorts[1].Lon, s.Lon, 0.0002)
}

func TestClampForcesImmediateArrival(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := DefaultParams()

	// one more step than the trip needs: progress must clamp, then arrive
	v := VoyageState{
		State:        AtSea,
		PortIdx:      0,
		NextPortIdx:  1,
		TripDuration: p.StepMinutes, // a single step covers the whole leg
		TripProgress: 0,
	}

	v, _ = Step(rng, p, DefaultPorts, v)
	require.Equal(t, AtSea, v.State)
	require.Equal(t, 1.0, v.TripProgress)

	v, _ = Step(rng, p, DefaultPorts, v)
	require.Equal(t, AtPort, v.State)
	require.Equal(t, 1, v.PortIdx)
}

func TestStopTriggersOnlyAfterInterval(t *testing.T) {
	p := DefaultParams()
	p.StopChance = 1.0 // deterministic once eligible

	rng := rand.New(rand.NewSource(11))
	fresh := VoyageState{
		State:            AtSea,
		PortIdx:          0,
		NextPortIdx:      1,
		TripDuration:     24 * 60,
		MinutesSinceStop: 0,
	}
	next, _ := Step(rng, p, DefaultPorts, fresh)
	assert.Equal(t, AtSea, next.State)

	overdue := fresh
	overdue.MinutesSinceStop = p.StopInterval + 1
	next, _ = Step(rng, p, DefaultPorts, overdue)
	assert.Equal(t, Stopped, next.State)
	// the emitting step burns part of the stop countdown already
	assert.Equal(t, p.StopMinutes-p.StepMinutes, next.MinutesLeft)
	assert.Equal(t, 0, next.MinutesSinceStop)
}

func TestBearingCardinalDirections(t *testing.T) {
	assert.InDelta(t, 0.0, Bearing(10, 106, 11, 106), 0.01)
	assert.InDelta(t, 180.0, Bearing(11, 106, 10, 106), 0.01)
	assert.InDelta(t, 90.0, Bearing(0, 106, 0, 107), 0.5)
	assert.InDelta(t, 270.0, Bearing(0, 107, 0, 106), 0.5)
}

func TestInterpolateEndpoints(t *testing.T) {
	from, to := DefaultPorts[0], DefaultPorts[3]

	lat, lon := Interpolate(from, to, 0)
	assert.Equal(t, from.Lat, lat)
	assert.Equal(t, from.Lon, lon)

	lat, lon = Interpolate(from, to, 1)
	assert.Equal(t, to.Lat, lat)
	assert.Equal(t, to.Lon, lon)
}

func TestGenerateHistoryOneDayWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(100))
	p := DefaultParams() // 30-minute step

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	var got []TimedSample
	err := GenerateHistory(start, end, p, DefaultPorts, rng, func(batch []TimedSample) error {
		got = append(got, batch...)
		return nil
	})
	require.NoError(t, err)

	require.LessOrEqual(t, len(got), 48)
	require.NotEmpty(t, got)

	last := got[len(got)-1].Time
	assert.True(t, last.Before(end))
	assert.False(t, last.Before(end.Add(-30*time.Minute)))

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].Time.After(got[i-1].Time))
	}
}

func TestGenerateHistoryFlushesInBatches(t *testing.T) {
	rng := rand.New(rand.NewSource(200))
	p := DefaultParams()
	p.StepMinutes = 10

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30) // ~4320 points at 10-minute resolution

	var calls, total int
	err := GenerateHistory(start, end, p, DefaultPorts, rng, func(batch []TimedSample) error {
		calls++
		total += len(batch)
		require.LessOrEqual(t, len(batch), 1000)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 30*24*6, total)
	assert.Greater(t, calls, 1)
}

func TestGenerateHistoryStopsOnSinkError(t *testing.T) {
	rng := rand.New(rand.NewSource(300))
	p := DefaultParams()
	p.StepMinutes = 10

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	calls := 0
	err := GenerateHistory(start, end, p, DefaultPorts, rng, func(batch []TimedSample) error {
		calls++
		if calls == 2 {
			return assert.AnError
		}
		return nil
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, calls)
}

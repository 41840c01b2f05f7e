package simulation

import (
	"math"
	"math/rand"
)

// State of a simulated voyage.
type State int

const (
	AtPort State = iota
	AtSea
	Stopped
)

func (s State) String() string {
	switch s {
	case AtPort:
		return "AT_PORT"
	case AtSea:
		return "AT_SEA"
	case Stopped:
		return "STOPPED"
	}
	return "UNKNOWN"
}

// Params tune the voyage state machine. All durations are simulated minutes.
type Params struct {
	StepMinutes  int
	DwellMin     int // port dwell lower bound
	DwellMax     int
	TripMin      int // sea leg lower bound
	TripMax      int
	StopInterval int     // minimum minutes underway before a stop may occur
	StopChance   float64 // per-step probability of stopping once eligible
	StopMinutes  int
}

// DefaultParams matches the 30-day seeding profile.
func DefaultParams() Params {
	return Params{
		StepMinutes:  30,
		DwellMin:     6 * 60,
		DwellMax:     12 * 60,
		TripMin:      12 * 60,
		TripMax:      24 * 60,
		StopInterval: 5 * 24 * 60,
		StopChance:   0.2,
		StopMinutes:  30,
	}
}

// VoyageState is the full machine state between steps. It is a plain value:
// Step never mutates its input.
type VoyageState struct {
	State            State
	PortIdx          int
	NextPortIdx      int
	MinutesLeft      int // countdown for the current dwell or stop
	TripDuration     int
	TripProgress     float64
	MinutesSinceStop int
}

// Sample is one emitted telemetry reading.
type Sample struct {
	Lat     float64
	Lon     float64
	Heading float64
	RPM     float64
	Speed   float64
	Fuel    float64
}

// NewVoyage starts a voyage dwelling at a random port.
func NewVoyage(rng *rand.Rand, p Params, ports []Port) VoyageState {
	cur := rng.Intn(len(ports))
	return VoyageState{
		State:       AtPort,
		PortIdx:     cur,
		NextPortIdx: (cur + 1) % len(ports),
		MinutesLeft: randMinutes(rng, p.DwellMin, p.DwellMax),
	}
}

// Step advances the machine by one step and emits the sample for the new
// position. Dwell and stop states run on a countdown; the sea leg transitions
// on trip progress alone, which is clamped to 1.0 so arrival fires on the
// following step.
func Step(rng *rand.Rand, p Params, ports []Port, v VoyageState) (VoyageState, Sample) {
	switch {
	case v.State == AtPort && v.MinutesLeft <= 0:
		// depart
		v.State = AtSea
		v.TripDuration = randMinutes(rng, p.TripMin, p.TripMax)
		v.TripProgress = 0
	case v.State == AtSea && v.TripProgress >= 1.0:
		// arrived; the new destination is always a different port
		v.State = AtPort
		v.PortIdx = v.NextPortIdx
		v.NextPortIdx = (v.PortIdx + randMinutes(rng, 1, len(ports)-1)) % len(ports)
		v.MinutesLeft = randMinutes(rng, p.DwellMin, p.DwellMax)
	case v.State == Stopped && v.MinutesLeft <= 0:
		// resume the voyage, progress and destination untouched
		v.State = AtSea
	}

	if v.State == AtSea && v.MinutesSinceStop > p.StopInterval && rng.Float64() < p.StopChance {
		v.State = Stopped
		v.MinutesLeft = p.StopMinutes
		v.MinutesSinceStop = 0
	}

	var s Sample
	switch v.State {
	case AtPort:
		port := ports[v.PortIdx]
		s.Lat = port.Lat + uniform(rng, -0.0001, 0.0001)
		s.Lon = port.Lon + uniform(rng, -0.0001, 0.0001)
		s.RPM = uniform(rng, 0, 200)
		s.Speed = 0
		s.Fuel = uniform(rng, 2, 10)
		s.Heading = uniform(rng, 0, 360)
		v.MinutesSinceStop += p.StepMinutes

	case AtSea:
		from, to := ports[v.PortIdx], ports[v.NextPortIdx]
		lat, lon := Interpolate(from, to, v.TripProgress)
		s.Lat = lat + uniform(rng, -0.001, 0.001)
		s.Lon = lon
		// heading from the current point towards a point slightly ahead
		aheadLat, aheadLon := Interpolate(from, to, v.TripProgress+0.01)
		s.Heading = Bearing(s.Lat, s.Lon, aheadLat, aheadLon)
		s.RPM = uniform(rng, 1800, 2200)
		s.Speed = uniform(rng, 15, 20)
		s.Fuel = uniform(rng, 150, 250)

		v.TripProgress += float64(p.StepMinutes) / float64(v.TripDuration)
		if v.TripProgress >= 1.0 {
			v.TripProgress = 1.0 // forces the arrival transition next step
		}
		v.MinutesSinceStop += p.StepMinutes

	case Stopped:
		from, to := ports[v.PortIdx], ports[v.NextPortIdx]
		s.Lat, s.Lon = Interpolate(from, to, v.TripProgress)
		s.RPM = 0
		s.Speed = 0
		s.Fuel = 0
		base := Bearing(from.Lat, from.Lon, to.Lat, to.Lon)
		s.Heading = math.Mod(base+uniform(rng, -10, 10)+360, 360)
		v.MinutesSinceStop = 0
	}

	if v.State != AtSea {
		v.MinutesLeft -= p.StepMinutes
	}
	return v, s
}

func randMinutes(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

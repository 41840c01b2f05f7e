package main

// Regenerates a plausible movement history for the demo fleet: clears each
// ship's telemetry, then replays the voyage state machine over the window.
// Batches committed before a failure are kept.

import (
	"errors"
	"flag"
	"math/rand"
	"time"

	"ship_telemetry/internal/app/config"
	"ship_telemetry/internal/app/ds"
	"ship_telemetry/internal/app/dsn"
	"ship_telemetry/internal/app/repository"
	"ship_telemetry/internal/app/simulation"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type seedShip struct {
	name   string
	mmsi   string
	weight float64
}

var fleet = []seedShip{
	{name: "Sand Dredger 01", mmsi: "123456789", weight: 5000.0},
	{name: "Cargo Carrier 02", mmsi: "987654321", weight: 2000.0},
	{name: "Patrol Boat 03", mmsi: "456123789", weight: 500.0},
}

func main() {
	days := flag.Int("days", 30, "length of the historical window in days")
	step := flag.Int("step", 30, "minutes between generated points")
	flag.Parse()

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep, err := repository.New("postgres", dsn.FromEnv(), "", "",
		conf.JwtKey, time.Duration(conf.TokenLifetimeMin)*time.Minute)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}
	defer rep.Close()

	if err := seed(rep, *days, *step); err != nil {
		logrus.Errorf("seeding failed: %v", err)
		return
	}
	logrus.Info("seeding completed")
}

func seed(rep *repository.Repository, days, stepMinutes int) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	params := simulation.DefaultParams()
	params.StepMinutes = stepMinutes

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	for _, s := range fleet {
		ship, err := ensureShip(rep, s)
		if err != nil {
			return err
		}

		if err := rep.DeleteTelemetryForShip(ship.ID); err != nil {
			return err
		}

		logrus.Infof("generating %d-day history for %s", days, ship.Name)
		err = simulation.GenerateHistory(start, end, params, simulation.DefaultPorts, rng,
			func(batch []simulation.TimedSample) error {
				points := make([]ds.Telemetry, len(batch))
				for i, p := range batch {
					points[i] = ds.Telemetry{
						ShipID:          ship.ID,
						Timestamp:       p.Time,
						RPM:             p.RPM,
						Speed:           p.Speed,
						FuelConsumption: p.Fuel,
						Latitude:        p.Lat,
						Longitude:       p.Lon,
						Heading:         p.Heading,
					}
				}
				return rep.CreateTelemetryBatch(points)
			})
		if err != nil {
			return err
		}
	}
	return nil
}

// ensureShip creates the demo ship or updates its weight when it already
// exists.
func ensureShip(rep *repository.Repository, s seedShip) (*ds.Ship, error) {
	ship, err := rep.GetShipByMMSI(s.mmsi)
	if err == nil {
		if ship.Weight != s.weight {
			if err := rep.UpdateShipWeight(ship.ID, s.weight); err != nil {
				return nil, err
			}
			ship.Weight = s.weight
		}
		return ship, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return rep.CreateShip(s.name, s.mmsi, s.weight)
}

package main

// External realtime pusher: registers two demo ships, then posts a telemetry
// payload per ship every interval against the running HTTP service.

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"ship_telemetry/internal/app/simulation"

	"github.com/sirupsen/logrus"
)

type pushShip struct {
	Name   string  `json:"name"`
	MMSI   string  `json:"mmsi"`
	Weight float64 `json:"weight"`

	lat, lon   float64
	dLat, dLon float64
}

func main() {
	apiURL := flag.String("api", "http://localhost:8000", "telemetry service base URL")
	token := flag.String("token", "", "bearer token for ship registration (optional)")
	interval := flag.Duration("interval", 30*time.Second, "time between pushes")
	flag.Parse()

	ships := []*pushShip{
		{Name: "Realtime Dredger A", MMSI: "REAL001", Weight: 4500.0,
			lat: 10.762622, lon: 106.660172, dLat: -0.0005, dLon: 0.0005},
		{Name: "Realtime Cargo B", MMSI: "REAL002", Weight: 1500.0,
			lat: 10.34599, lon: 107.08426, dLat: 0.0005, dLon: -0.0005},
	}

	client := &http.Client{Timeout: 10 * time.Second}
	registerShips(client, *apiURL, *token, ships)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	logrus.Infof("starting simulation for %d ships", len(ships))

	for {
		for _, s := range ships {
			if err := pushOnce(client, *apiURL, rng, s); err != nil {
				logrus.Errorf("%s: %v", s.Name, err)
			}
		}
		time.Sleep(*interval)
	}
}

// registerShips creates the ships up front so their weights are set; already
// registered MMSIs answer 409 and are ignored.
func registerShips(client *http.Client, apiURL, token string, ships []*pushShip) {
	for _, s := range ships {
		body, _ := json.Marshal(s)
		req, err := http.NewRequest(http.MethodPost, apiURL+"/ships/", bytes.NewReader(body))
		if err != nil {
			logrus.Warnf("register %s: %v", s.MMSI, err)
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := client.Do(req)
		if err != nil {
			logrus.Warnf("register %s: %v", s.MMSI, err)
			continue
		}
		resp.Body.Close()
	}
}

func pushOnce(client *http.Client, apiURL string, rng *rand.Rand, s *pushShip) error {
	oldLat, oldLon := s.lat, s.lon
	s.lat += s.dLat + uniform(rng, -0.0001, 0.0001)
	s.lon += s.dLon + uniform(rng, -0.0001, 0.0001)

	heading := simulation.Bearing(oldLat, oldLon, s.lat, s.lon)
	rpm := uniform(rng, 1800, 2200)
	speed := uniform(rng, 10, 15)
	fuel := rpm*0.1 + speed*2 + uniform(rng, -5, 5)

	payload := map[string]float64{
		"rpm":              rpm,
		"speed":            speed,
		"fuel_consumption": fuel,
		"latitude":         s.lat,
		"longitude":        s.lon,
		"heading":          heading,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := client.Post(
		fmt.Sprintf("%s/telemetry/%s", apiURL, s.MMSI),
		"application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	resp.Body.Close()

	logrus.Infof("%s -> sent (heading %d)", s.Name, int(heading))
	return nil
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

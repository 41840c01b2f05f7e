package simulation

import "math"

// Port is a named anchorage ships travel between.
type Port struct {
	Name string
	Lat  float64
	Lon  float64
}

// DefaultPorts along the Vietnam coast.
var DefaultPorts = []Port{
	{Name: "HCMC Port", Lat: 10.762622, Lon: 106.660172},
	{Name: "Vung Tau", Lat: 10.34599, Lon: 107.08426},
	{Name: "Hai Phong", Lat: 20.844912, Lon: 106.688087},
	{Name: "Da Nang", Lat: 16.054407, Lon: 108.202167},
	{Name: "Can Tho", Lat: 10.045162, Lon: 105.746857},
}

// Interpolate returns the position a fraction progress of the way from start
// to end.
func Interpolate(start, end Port, progress float64) (lat, lon float64) {
	lat = start.Lat + (end.Lat-start.Lat)*progress
	lon = start.Lon + (end.Lon-start.Lon)*progress
	return lat, lon
}

// Bearing computes the initial bearing in degrees [0, 360) from point 1 to
// point 2, inputs in degrees.
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLon1 := lon1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	rLon2 := lon2 * math.Pi / 180

	dLon := rLon2 - rLon1
	y := math.Sin(dLon) * math.Cos(rLat2)
	x := math.Cos(rLat1)*math.Sin(rLat2) - math.Sin(rLat1)*math.Cos(rLat2)*math.Cos(dLon)
	brng := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(brng+360, 360)
}

package catalog

import "strings"

// City is a reference observing location. Consumed by the CLI and TUI for
// observer lookup; the engine itself only ever sees lat/lon.
type City struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	LatDeg  float64 `json:"lat_deg"`
	LonDeg  float64 `json:"lon_deg"`
}

// Cities returns the embedded reference city list.
func Cities() []City {
	return cities
}

// FindCity looks up a city by case-insensitive name. The second return is
// false when no city matches.
func FindCity(name string) (City, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, c := range cities {
		if strings.ToLower(c.Name) == want {
			return c, true
		}
	}
	return City{}, false
}

var cities = []City{
	{"London", "UK", 51.5074, -0.1278},
	{"Paris", "France", 48.8566, 2.3522},
	{"Berlin", "Germany", 52.5200, 13.4050},
	{"Reykjavik", "Iceland", 64.1466, -21.9426},
	{"Moscow", "Russia", 55.7558, 37.6173},
	{"Cairo", "Egypt", 30.0444, 31.2357},
	{"Nairobi", "Kenya", -1.2921, 36.8219},
	{"Cape Town", "South Africa", -33.9249, 18.4241},
	{"Delhi", "India", 28.6139, 77.2090},
	{"Mumbai", "India", 19.0760, 72.8777},
	{"Chennai", "India", 13.0827, 80.2707},
	{"Singapore", "Singapore", 1.3521, 103.8198},
	{"Beijing", "China", 39.9042, 116.4074},
	{"Tokyo", "Japan", 35.6762, 139.6503},
	{"Sydney", "Australia", -33.8688, 151.2093},
	{"Auckland", "New Zealand", -36.8509, 174.7645},
	{"Anchorage", "USA", 61.2181, -149.9003},
	{"Honolulu", "USA", 21.3069, -157.8583},
	{"Los Angeles", "USA", 34.0522, -118.2437},
	{"New York", "USA", 40.7128, -74.0060},
	{"Mexico City", "Mexico", 19.4326, -99.1332},
	{"Santiago", "Chile", -33.4489, -70.6693},
	{"Sao Paulo", "Brazil", -23.5505, -46.6333},
}

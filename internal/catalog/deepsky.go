package catalog

// DeepSky is a deep-sky catalog record (Messier/NGC marker or a fixed
// meteor-shower radiant). Coordinates are J2000 degrees.
type DeepSky struct {
	Name   string  `json:"name"`
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
	Type   string  `json:"type"`
}

// DeepSkyObjects returns the embedded deep-sky marker set: a Messier
// selection, a few bright NGC showpieces, and the meteor-shower radiants.
func DeepSkyObjects() []DeepSky {
	out := make([]DeepSky, 0, len(messier)+len(MeteorRadiants))
	out = append(out, messier...)
	out = append(out, MeteorRadiants...)
	return out
}

// MeteorRadiants is the fixed radiant list for the major annual showers.
var MeteorRadiants = []DeepSky{
	{Name: "Perseids", RADeg: 46.0, DecDeg: 58.0, Type: "Meteor radiant"},
	{Name: "Geminids", RADeg: 112.0, DecDeg: 33.0, Type: "Meteor radiant"},
	{Name: "Quadrantids", RADeg: 230.0, DecDeg: 49.0, Type: "Meteor radiant"},
	{Name: "Lyrids", RADeg: 272.0, DecDeg: 34.0, Type: "Meteor radiant"},
}

// messier holds the brighter Messier objects plus a handful of southern NGC
// objects so the deep-sky layer is not empty below the celestial equator.
var messier = []DeepSky{
	{Name: "M1 Crab Nebula", RADeg: 83.63, DecDeg: 22.01, Type: "Supernova remnant"},
	{Name: "M3", RADeg: 205.55, DecDeg: 28.38, Type: "Globular cluster"},
	{Name: "M4", RADeg: 245.90, DecDeg: -26.53, Type: "Globular cluster"},
	{Name: "M5", RADeg: 229.64, DecDeg: 2.08, Type: "Globular cluster"},
	{Name: "M6 Butterfly Cluster", RADeg: 265.07, DecDeg: -32.22, Type: "Open cluster"},
	{Name: "M7 Ptolemy Cluster", RADeg: 268.46, DecDeg: -34.79, Type: "Open cluster"},
	{Name: "M8 Lagoon Nebula", RADeg: 270.92, DecDeg: -24.38, Type: "Nebula"},
	{Name: "M13 Hercules Cluster", RADeg: 250.42, DecDeg: 36.46, Type: "Globular cluster"},
	{Name: "M15", RADeg: 322.49, DecDeg: 12.17, Type: "Globular cluster"},
	{Name: "M16 Eagle Nebula", RADeg: 274.70, DecDeg: -13.81, Type: "Nebula"},
	{Name: "M17 Omega Nebula", RADeg: 275.20, DecDeg: -16.18, Type: "Nebula"},
	{Name: "M20 Trifid Nebula", RADeg: 270.63, DecDeg: -23.03, Type: "Nebula"},
	{Name: "M22", RADeg: 279.10, DecDeg: -23.90, Type: "Globular cluster"},
	{Name: "M27 Dumbbell Nebula", RADeg: 299.90, DecDeg: 22.72, Type: "Planetary nebula"},
	{Name: "M31 Andromeda Galaxy", RADeg: 10.68, DecDeg: 41.27, Type: "Galaxy"},
	{Name: "M33 Triangulum Galaxy", RADeg: 23.46, DecDeg: 30.66, Type: "Galaxy"},
	{Name: "M42 Orion Nebula", RADeg: 83.82, DecDeg: -5.39, Type: "Nebula"},
	{Name: "M44 Beehive Cluster", RADeg: 130.10, DecDeg: 19.67, Type: "Open cluster"},
	{Name: "M45 Pleiades", RADeg: 56.75, DecDeg: 24.12, Type: "Open cluster"},
	{Name: "M51 Whirlpool Galaxy", RADeg: 202.47, DecDeg: 47.19, Type: "Galaxy"},
	{Name: "M57 Ring Nebula", RADeg: 283.40, DecDeg: 33.03, Type: "Planetary nebula"},
	{Name: "M81 Bode's Galaxy", RADeg: 148.89, DecDeg: 69.07, Type: "Galaxy"},
	{Name: "M82 Cigar Galaxy", RADeg: 148.97, DecDeg: 69.68, Type: "Galaxy"},
	{Name: "M92", RADeg: 259.28, DecDeg: 43.14, Type: "Globular cluster"},
	{Name: "M101 Pinwheel Galaxy", RADeg: 210.80, DecDeg: 54.35, Type: "Galaxy"},
	{Name: "M104 Sombrero Galaxy", RADeg: 190.00, DecDeg: -11.62, Type: "Galaxy"},
	{Name: "NGC 104 47 Tucanae", RADeg: 6.02, DecDeg: -72.08, Type: "Globular cluster"},
	{Name: "NGC 869/884 Double Cluster", RADeg: 34.75, DecDeg: 57.13, Type: "Open cluster"},
	{Name: "NGC 3372 Carina Nebula", RADeg: 161.27, DecDeg: -59.87, Type: "Nebula"},
	{Name: "NGC 5139 Omega Centauri", RADeg: 201.70, DecDeg: -47.48, Type: "Globular cluster"},
}

package ctdf

import "math"

const EarthRadiusKm = 6371.0

type Location struct {
	Type        string    `json:"-" groups:"basic"`
	Coordinates []float64 `json:"coordinates" groups:"basic"`
}

func (l *Location) Longitude() float64 {
	return l.Coordinates[0]
}

func (l *Location) Latitude() float64 {
	return l.Coordinates[1]
}

func (l *Location) Valid() bool {
	return l != nil && len(l.Coordinates) == 2
}

// DistanceTo is the haversine great-circle distance in kilometres
func (l *Location) DistanceTo(other *Location) float64 {
	if !l.Valid() || !other.Valid() {
		return 0
	}

	φ1 := l.Latitude() * math.Pi / 180.0
	φ2 := other.Latitude() * math.Pi / 180.0
	dφ := (other.Latitude() - l.Latitude()) * math.Pi / 180.0
	dλ := (other.Longitude() - l.Longitude()) * math.Pi / 180.0

	a := math.Sin(dφ/2)*math.Sin(dφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(dλ/2)*math.Sin(dλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

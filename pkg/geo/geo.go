// Package geo holds distance and containment helpers over WGS84 coordinates.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

type Point struct {
	Lat float64
	Lng float64
}

// Distance returns the great-circle distance in meters between two coordinates.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// PointDistance is Distance over two points.
func PointDistance(a, b Point) float64 {
	return Distance(a.Lat, a.Lng, b.Lat, b.Lng)
}

// IsWithinRadius reports whether point lies inside the circle around center.
// The boundary is inclusive.
func IsWithinRadius(center, point Point, radiusMeters float64) bool {
	return PointDistance(center, point) <= radiusMeters
}

// Nearest returns the candidate closest to p. The first candidate wins ties.
// ok is false when candidates is empty.
func Nearest[T any](p Point, candidates []T, loc func(T) Point) (nearest T, ok bool) {
	best := math.Inf(1)
	for _, c := range candidates {
		d := PointDistance(p, loc(c))
		if d < best {
			best = d
			nearest = c
			ok = true
		}
	}
	return nearest, ok
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

package booking

import (
	"math"

	"emprius-backend/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points using the
// Haversine formula.
func DistanceKm(a, b domain.Location) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*math.Pi/180)*math.Cos(b.Latitude*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

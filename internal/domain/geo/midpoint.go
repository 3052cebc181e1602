package geo

import (
	"math"

	"bookswap-engine/internal/pkg/errs"
)

var ErrInvalidCoordinates = errs.New("coordinates out of range")

const earthRadiusKm = 6371.0

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	return Coordinates{Lat: lat, Lng: lng}, nil
}

// Midpoint computes the geodesic midpoint between two points by averaging
// their unit vectors. Pure function, no side effects.
func Midpoint(a, b Coordinates) Coordinates {
	latA, lngA := radians(a.Lat), radians(a.Lng)
	latB, lngB := radians(b.Lat), radians(b.Lng)

	x := math.Cos(latA)*math.Cos(lngA) + math.Cos(latB)*math.Cos(lngB)
	y := math.Cos(latA)*math.Sin(lngA) + math.Cos(latB)*math.Sin(lngB)
	z := math.Sin(latA) + math.Sin(latB)

	norm := math.Sqrt(x*x + y*y + z*z)
	if norm == 0 {
		// Antipodal points have no unique midpoint; fall back to arithmetic.
		return Coordinates{Lat: (a.Lat + b.Lat) / 2, Lng: (a.Lng + b.Lng) / 2}
	}

	return Coordinates{
		Lat: degrees(math.Asin(z / norm)),
		Lng: degrees(math.Atan2(y, x)),
	}
}

// DistanceKm is the haversine great-circle distance.
func DistanceKm(a, b Coordinates) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sinLng*sinLng

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

//go:build unit

package geo_test

import (
	"testing"

	"bookswap-engine/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mid = geo.Coordinates{Lat: 35.0, Lng: 139.0}

// near returns coordinates offset from the midpoint by roughly km kilometers.
func near(km float64) geo.Coordinates {
	return geo.Coordinates{Lat: mid.Lat + km/111.0, Lng: mid.Lng}
}

func TestRankFilters(t *testing.T) {
	candidates := []geo.Candidate{
		{Name: "Central Cafe", Coordinates: near(1), Type: "cafe", Rating: 4.5},
		{Name: "North Library", Coordinates: near(2), Type: "library", Rating: 4.0},
		{Name: "Far Park", Coordinates: near(40), Type: "park", Rating: 5.0},
		{Name: "Dive Bar", Coordinates: near(1), Type: "cafe", Rating: 2.0},
	}

	t.Run("type filter is case insensitive", func(t *testing.T) {
		got := geo.Rank(mid, candidates, geo.Filters{Type: "Cafe"})
		require.Len(t, got, 2)
		for _, c := range got {
			assert.Equal(t, "cafe", c.Type)
		}
	})

	t.Run("default radius drops far candidates", func(t *testing.T) {
		got := geo.Rank(mid, candidates, geo.Filters{})
		for _, c := range got {
			assert.NotEqual(t, "Far Park", c.Name)
		}
		assert.Len(t, got, 3)
	})

	t.Run("explicit radius widens the net", func(t *testing.T) {
		got := geo.Rank(mid, candidates, geo.Filters{MaxDistanceKm: 100})
		assert.Len(t, got, 4)
	})

	t.Run("minimum rating", func(t *testing.T) {
		got := geo.Rank(mid, candidates, geo.Filters{MinRating: 4.0})
		require.Len(t, got, 2)
		for _, c := range got {
			assert.GreaterOrEqual(t, c.Rating, 4.0)
		}
	})
}

func TestRankOrdering(t *testing.T) {
	t.Run("closer beats farther at equal rating", func(t *testing.T) {
		got := geo.Rank(mid, []geo.Candidate{
			{Name: "Far", Coordinates: near(10), Type: "cafe", Rating: 4.0},
			{Name: "Close", Coordinates: near(1), Type: "cafe", Rating: 4.0},
		}, geo.Filters{})
		require.Len(t, got, 2)
		assert.Equal(t, "Close", got[0].Name)
		assert.Greater(t, got[0].Score, got[1].Score)
	})

	t.Run("better rated beats worse at equal distance", func(t *testing.T) {
		got := geo.Rank(mid, []geo.Candidate{
			{Name: "Meh", Coordinates: near(2), Type: "cafe", Rating: 3.0},
			{Name: "Great", Coordinates: near(2), Type: "cafe", Rating: 5.0},
		}, geo.Filters{})
		require.Len(t, got, 2)
		assert.Equal(t, "Great", got[0].Name)
	})

	t.Run("ties break by name for determinism", func(t *testing.T) {
		got := geo.Rank(mid, []geo.Candidate{
			{Name: "Bravo", Coordinates: near(2), Type: "cafe", Rating: 4.0},
			{Name: "Alpha", Coordinates: near(2), Type: "cafe", Rating: 4.0},
		}, geo.Filters{})
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha", got[0].Name)
	})

	t.Run("scores stay in the 0 to 100 band", func(t *testing.T) {
		got := geo.Rank(mid, []geo.Candidate{
			{Name: "Ideal", Coordinates: mid, Type: "cafe", Rating: 5.0,
				Amenities: []string{"wifi", "seating", "parking", "restroom", "cafe", "charging", "lockers"}},
			{Name: "Bare", Coordinates: near(24), Type: "cafe", Rating: 0},
		}, geo.Filters{})
		require.Len(t, got, 2)
		for _, c := range got {
			assert.GreaterOrEqual(t, c.Score, 0.0)
			assert.LessOrEqual(t, c.Score, 100.0)
		}
	})
}

func TestRankAmenities(t *testing.T) {
	candidates := []geo.Candidate{
		{Name: "Full House", Coordinates: near(2), Type: "cafe", Rating: 4.0,
			Amenities: []string{"WiFi", "Seating"}},
		{Name: "Partial", Coordinates: near(2), Type: "cafe", Rating: 4.0,
			Amenities: []string{"wifi"}},
		{Name: "None", Coordinates: near(2), Type: "cafe", Rating: 4.0},
	}

	got := geo.Rank(mid, candidates, geo.Filters{Amenities: []string{"wifi", "seating"}})
	require.Len(t, got, 3)

	// Amenity matching is case insensitive and proportional, never a filter.
	assert.Equal(t, "Full House", got[0].Name)
	assert.Equal(t, "Partial", got[1].Name)
	assert.Equal(t, "None", got[2].Name)
}

package geo

import (
	"sort"
	"strings"
)

// Candidate is an ephemeral public meeting spot near the midpoint. Never
// persisted by the engine.
type Candidate struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Type        string      `json:"type"`
	DistanceKm  float64     `json:"distance_km"`
	Rating      float64     `json:"rating"`
	Amenities   []string    `json:"amenities"`
	Score       float64     `json:"score"`
}

type Filters struct {
	Type          string
	MaxDistanceKm float64
	MinRating     float64
	Amenities     []string
}

// Score weights. The contract that matters is monotonicity: score falls as
// distance grows and rises as rating grows, everything else fixed.
const (
	distanceWeight = 0.50
	ratingWeight   = 0.35
	amenityWeight  = 0.15

	defaultMaxDistanceKm = 25.0
	amenityCountCap      = 6
)

// Rank filters candidates against f, recomputes each distance from the
// midpoint, scores 0..100 and returns them sorted by descending score.
// Ties break by ascending distance, then name, for deterministic output.
func Rank(midpoint Coordinates, candidates []Candidate, f Filters) []Candidate {
	maxDist := f.MaxDistanceKm
	if maxDist <= 0 {
		maxDist = defaultMaxDistanceKm
	}

	ranked := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		c.DistanceKm = DistanceKm(midpoint, c.Coordinates)
		if f.Type != "" && !strings.EqualFold(c.Type, f.Type) {
			continue
		}
		if c.DistanceKm > maxDist {
			continue
		}
		if c.Rating < f.MinRating {
			continue
		}
		c.Score = score(c, maxDist, f.Amenities)
		ranked = append(ranked, c)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

func score(c Candidate, maxDist float64, wanted []string) float64 {
	distScore := 1 - c.DistanceKm/maxDist
	if distScore < 0 {
		distScore = 0
	}

	ratingScore := c.Rating / 5
	if ratingScore > 1 {
		ratingScore = 1
	}

	var amenityScore float64
	if len(wanted) > 0 {
		matched := 0
		for _, w := range wanted {
			for _, a := range c.Amenities {
				if strings.EqualFold(a, w) {
					matched++
					break
				}
			}
		}
		amenityScore = float64(matched) / float64(len(wanted))
	} else {
		n := len(c.Amenities)
		if n > amenityCountCap {
			n = amenityCountCap
		}
		amenityScore = float64(n) / amenityCountCap
	}

	return 100 * (distanceWeight*distScore + ratingWeight*ratingScore + amenityWeight*amenityScore)
}

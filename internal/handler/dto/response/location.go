package response

import (
	"bookswap-engine/internal/usecase/queries"
)

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MeetingSpotResponse struct {
	Name       string              `json:"name"`
	Location   CoordinatesResponse `json:"location"`
	Type       string              `json:"type"`
	DistanceKm float64             `json:"distanceKm"`
	Rating     float64             `json:"rating"`
	Amenities  []string            `json:"amenities,omitempty"`
	Score      float64             `json:"score"`
}

type MeetingSpotsResponse struct {
	Midpoint   CoordinatesResponse   `json:"midpoint"`
	Candidates []MeetingSpotResponse `json:"candidates"`
}

func FromMeetingSpotsView(v *queries.MeetingSpotsView) *MeetingSpotsResponse {
	resp := &MeetingSpotsResponse{
		Midpoint:   CoordinatesResponse{Lat: v.Midpoint.Lat, Lng: v.Midpoint.Lng},
		Candidates: make([]MeetingSpotResponse, 0, len(v.Candidates)),
	}
	for _, cand := range v.Candidates {
		resp.Candidates = append(resp.Candidates, MeetingSpotResponse{
			Name:       cand.Name,
			Location:   CoordinatesResponse{Lat: cand.Coordinates.Lat, Lng: cand.Coordinates.Lng},
			Type:       cand.Type,
			DistanceKm: cand.DistanceKm,
			Rating:     cand.Rating,
			Amenities:  cand.Amenities,
			Score:      cand.Score,
		})
	}
	return resp
}

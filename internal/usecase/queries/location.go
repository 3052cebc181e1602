package queries

import (
	"context"

	"bookswap-engine/internal/domain/geo"
	"bookswap-engine/internal/usecase"
)

type LocationQueries interface {
	// FindMeetingSpots computes the fair midpoint between the two parties,
	// asks the remote place index for nearby candidates and ranks them
	// locally. Ranking is pure; only the candidate lookup leaves the process.
	FindMeetingSpots(ctx context.Context, partyA, partyB geo.Coordinates, transportMode string, f geo.Filters) (*MeetingSpotsView, error)
}

type locationQueriesImpl struct {
	gateway usecase.Gateway
}

func NewLocationQueries(gateway usecase.Gateway) LocationQueries {
	return &locationQueriesImpl{gateway: gateway}
}

func (q *locationQueriesImpl) FindMeetingSpots(ctx context.Context, partyA, partyB geo.Coordinates, transportMode string, f geo.Filters) (*MeetingSpotsView, error) {
	midpoint := geo.Midpoint(partyA, partyB)

	var placeTypes []string
	if f.Type != "" {
		placeTypes = []string{f.Type}
	}

	candidates, err := q.gateway.SearchPlaces(ctx, partyA, partyB, transportMode, placeTypes)
	if err != nil {
		return nil, err
	}

	return &MeetingSpotsView{
		Midpoint:   midpoint,
		Candidates: geo.Rank(midpoint, candidates, f),
	}, nil
}

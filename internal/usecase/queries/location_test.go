//go:build unit

package queries_test

import (
	"context"
	"testing"

	"bookswap-engine/internal/domain/geo"
	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase/queries"
	usecasemock "bookswap-engine/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFindMeetingSpots(t *testing.T) {
	ctx := context.Background()
	partyA := geo.Coordinates{Lat: 35.0, Lng: 139.0}
	partyB := geo.Coordinates{Lat: 35.2, Lng: 139.0}

	t.Run("ranks the remote candidates around the midpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := usecasemock.NewMockGateway(ctrl)
		q := queries.NewLocationQueries(gateway)

		mid := geo.Midpoint(partyA, partyB)
		gateway.EXPECT().SearchPlaces(gomock.Any(), partyA, partyB, "walking", []string{"cafe"}).
			Return([]geo.Candidate{
				{Name: "Far Cafe", Coordinates: geo.Coordinates{Lat: mid.Lat + 0.05, Lng: mid.Lng}, Type: "cafe", Rating: 4.0},
				{Name: "Near Cafe", Coordinates: mid, Type: "cafe", Rating: 4.0},
			}, nil)

		view, err := q.FindMeetingSpots(ctx, partyA, partyB, "walking", geo.Filters{Type: "cafe"})
		require.NoError(t, err)
		assert.Equal(t, mid, view.Midpoint)
		require.Len(t, view.Candidates, 2)
		assert.Equal(t, "Near Cafe", view.Candidates[0].Name)
	})

	t.Run("no type filter queries all place types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := usecasemock.NewMockGateway(ctrl)
		q := queries.NewLocationQueries(gateway)

		gateway.EXPECT().SearchPlaces(gomock.Any(), partyA, partyB, "transit", nil).
			Return([]geo.Candidate{}, nil)

		view, err := q.FindMeetingSpots(ctx, partyA, partyB, "transit", geo.Filters{})
		require.NoError(t, err)
		assert.Empty(t, view.Candidates)
	})

	t.Run("gateway failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := usecasemock.NewMockGateway(ctrl)
		q := queries.NewLocationQueries(gateway)

		gateway.EXPECT().SearchPlaces(gomock.Any(), partyA, partyB, "walking", nil).
			Return(nil, errs.WithKind(errs.New("place index down"), errs.KindNetwork, "place index down"))

		_, err := q.FindMeetingSpots(ctx, partyA, partyB, "walking", geo.Filters{})
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindNetwork))
	})
}

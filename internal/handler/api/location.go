package api

import (
	"net/http"

	"bookswap-engine/internal/domain/geo"
	reqdto "bookswap-engine/internal/handler/dto/request"
	resdto "bookswap-engine/internal/handler/dto/response"
	"bookswap-engine/internal/handler/httperr"
	"bookswap-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationQueries queries.LocationQueries
}

func NewLocationHandler(locationQueries queries.LocationQueries) *LocationHandler {
	return &LocationHandler{locationQueries: locationQueries}
}

func (h *LocationHandler) MeetingSpots(c *gin.Context) {
	var q reqdto.MeetingSpotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	partyA, err := geo.NewCoordinates(*q.LatA, *q.LngA)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coordinates", nil)
		return
	}
	partyB, err := geo.NewCoordinates(*q.LatB, *q.LngB)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coordinates", nil)
		return
	}

	view, err := h.locationQueries.FindMeetingSpots(c.Request.Context(), partyA, partyB, q.TransportMode, geo.Filters{
		Type:          q.Type,
		MaxDistanceKm: q.MaxDistanceKm,
		MinRating:     q.MinRating,
		Amenities:     q.Amenities,
	})
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMeetingSpotsView(view))
}

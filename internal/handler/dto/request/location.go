package request

// MeetingSpotsQuery carries both parties' positions plus optional candidate
// filters. Coordinates are bound as query parameters.
type MeetingSpotsQuery struct {
	// Pointers so a legitimate zero coordinate is not mistaken for absence.
	LatA          *float64 `form:"lat_a" binding:"required,min=-90,max=90"`
	LngA          *float64 `form:"lng_a" binding:"required,min=-180,max=180"`
	LatB          *float64 `form:"lat_b" binding:"required,min=-90,max=90"`
	LngB          *float64 `form:"lng_b" binding:"required,min=-180,max=180"`
	TransportMode string   `form:"mode" binding:"omitempty,oneof=walking driving transit"`
	Type          string   `form:"type"`
	MaxDistanceKm float64  `form:"max_distance_km" binding:"omitempty,gt=0"`
	MinRating     float64  `form:"min_rating" binding:"omitempty,min=0,max=5"`
	Amenities     []string `form:"amenity"`
}

package model

// Station is owned by its Route. The first station has no
// DistanceFromPrevious, the last no DistanceToNext.
type Station struct {
	DTO
	StationName          string   `gorm:"not null" json:"stationName"`
	DistanceFromPrevious *float64 `json:"distanceFromPrevious"` // km
	DistanceToNext       *float64 `json:"distanceToNext"`       // km
	Position             int      `gorm:"not null" json:"position"`
	RouteId              uint     `json:"routeId"`
}

type Route struct {
	DTO
	RouteName string    `gorm:"not null" json:"routeName"`
	Stations  []Station `gorm:"foreignKey:RouteId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"stations"`
}

// TotalDistance sums DistanceToNext across all stations, missing values count as 0.
func (r Route) TotalDistance() float64 {
	var total float64
	for _, s := range r.Stations {
		if s.DistanceToNext != nil {
			total += *s.DistanceToNext
		}
	}
	return total
}

// StationIndex returns the position of the named station in the ordered
// sequence, or -1 when absent.
func (r Route) StationIndex(name string) int {
	for i, s := range r.Stations {
		if s.StationName == name {
			return i
		}
	}
	return -1
}

type StationInput struct {
	StationName          string   `json:"stationName"`
	DistanceFromPrevious *float64 `json:"distanceFromPrevious"`
	DistanceToNext       *float64 `json:"distanceToNext"`
}

type CreateRouteInput struct {
	RouteName string         `json:"routeName" validate:"required"`
	Stations  []StationInput `json:"stations" validate:"required,min=1"`
}

package model

import (
	"testing"

	"horizon_booking/utils"

	"github.com/stretchr/testify/assert"
)

func TestRouteTotalDistance(t *testing.T) {
	route := Route{
		Stations: []Station{
			{StationName: "Delhi", DistanceToNext: utils.Ptr(100.0)},
			{StationName: "Agra", DistanceToNext: utils.Ptr(150.0)},
			{StationName: "Bhopal"},
		},
	}
	assert.Equal(t, 250.0, route.TotalDistance())

	assert.Zero(t, Route{}.TotalDistance())
}

func TestRouteStationIndex(t *testing.T) {
	route := Route{
		Stations: []Station{
			{StationName: "Delhi"},
			{StationName: "Agra"},
			{StationName: "Bhopal"},
		},
	}
	assert.Equal(t, 0, route.StationIndex("Delhi"))
	assert.Equal(t, 2, route.StationIndex("Bhopal"))
	assert.Equal(t, -1, route.StationIndex("Mumbai"))
}

func TestScheduleRunsOn(t *testing.T) {
	s := Schedule{OperatingDays: []string{"Monday", "Friday"}}
	assert.True(t, s.RunsOn("Monday"))
	assert.True(t, s.RunsOn("Friday"))
	assert.False(t, s.RunsOn("Sunday"))
	assert.False(t, Schedule{}.RunsOn("Monday"))
}

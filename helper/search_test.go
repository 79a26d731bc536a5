package helper

import (
	"testing"
	"time"

	"horizon_booking/model"
	"horizon_booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Delhi -> Agra -> Bhopal, 100 km then 150 km.
func corridorRoute() model.Route {
	return model.Route{
		RouteName: "Delhi-Bhopal",
		Stations: []model.Station{
			{StationName: "Delhi", DistanceToNext: utils.Ptr(100.0), Position: 1},
			{StationName: "Agra", DistanceFromPrevious: utils.Ptr(100.0), DistanceToNext: utils.Ptr(150.0), Position: 2},
			{StationName: "Bhopal", DistanceFromPrevious: utils.Ptr(150.0), Position: 3},
		},
	}
}

func corridorTrain() model.Train {
	return model.Train{
		TrainName:   "Shatabdi Express",
		TrainNumber: "12001",
		Source:      "Delhi",
		Destination: "Bhopal",
	}
}

func mondaySchedule() model.Schedule {
	return model.Schedule{
		OperatingDays: []string{"Monday"},
		DepartureTime: "08:00",
		ArrivalTime:   "14:00",
	}
}

func TestConvertToDate(t *testing.T) {
	ts, err := ConvertToDate("08:30", "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 6, 8, 30, 0, 0, time.UTC), ts)

	_, err = ConvertToDate("8:3", "2025-01-06")
	assert.Error(t, err)

	_, err = ConvertToDate("08:30", "06-01-2025")
	assert.Error(t, err)
}

func TestTravelDuration(t *testing.T) {
	assert.Equal(t, time.Hour, TravelDuration(60))
	assert.Equal(t, 100*time.Minute, TravelDuration(100))
	assert.Equal(t, time.Duration(0), TravelDuration(0))
}

func TestSegmentDistancePrefersDistanceToNext(t *testing.T) {
	route := corridorRoute()
	assert.Equal(t, 150.0, SegmentDistance(route.Stations, 1, 2))
	assert.Equal(t, 250.0, SegmentDistance(route.Stations, 0, 2))
}

func TestOffsetDistancePrefersDistanceFromPrevious(t *testing.T) {
	route := corridorRoute()
	// Delhi has no DistanceFromPrevious, so the fallback applies there.
	assert.Equal(t, 100.0, OffsetDistance(route.Stations, 0, 1))
	assert.Equal(t, 100.0, OffsetDistance(route.Stations, 1, 2))
}

func TestEvaluateTrainFromOrigin(t *testing.T) {
	route := corridorRoute()

	result, ok := EvaluateTrain(route, corridorTrain(), mondaySchedule(), 0, 2, "2025-01-06")
	require.True(t, ok)

	// Boarding at the train's own origin, no clock shift.
	assert.Equal(t, "Mon, Jan 6, 2025, 08:00 AM", result.AdjustedDepartureTime)
	assert.Equal(t, 250.0, result.TotalDistance)
	assert.InDelta(t, 250.0/60.0, result.EstimatedTime, 0.001)
}

func TestEvaluateTrainIntermediateBoarding(t *testing.T) {
	route := corridorRoute()

	result, ok := EvaluateTrain(route, corridorTrain(), mondaySchedule(), 1, 2, "2025-01-06")
	require.True(t, ok)

	// 100 km from Delhi to Agra at 60 km/h shifts departure by 1h40m.
	assert.Equal(t, "Mon, Jan 6, 2025, 09:40 AM", result.AdjustedDepartureTime)
	assert.Equal(t, "Mon, Jan 6, 2025, 11:20 AM", result.ArrivalTimeAtDestination)
	assert.Equal(t, 150.0, result.TotalDistance)
	assert.Equal(t, "12001", result.TrainNumber)
}

func TestEvaluateTrainWeekdayFilter(t *testing.T) {
	route := corridorRoute()

	// 2025-01-07 is a Tuesday.
	_, ok := EvaluateTrain(route, corridorTrain(), mondaySchedule(), 0, 2, "2025-01-07")
	assert.False(t, ok)
}

func TestEvaluateTrainSpanContainment(t *testing.T) {
	route := corridorRoute()

	// A train starting at Agra cannot serve a Delhi boarding.
	train := corridorTrain()
	train.Source = "Agra"

	_, ok := EvaluateTrain(route, train, mondaySchedule(), 0, 2, "2025-01-06")
	assert.False(t, ok)
}

func TestEvaluateTrainShortSpan(t *testing.T) {
	route := corridorRoute()

	// A Delhi-Agra train cannot serve a Delhi-Bhopal request.
	train := corridorTrain()
	train.Destination = "Agra"

	_, ok := EvaluateTrain(route, train, mondaySchedule(), 0, 2, "2025-01-06")
	assert.False(t, ok)
}

func TestEvaluateTrainBadDate(t *testing.T) {
	route := corridorRoute()

	_, ok := EvaluateTrain(route, corridorTrain(), mondaySchedule(), 0, 2, "06/01/2025")
	assert.False(t, ok)
}

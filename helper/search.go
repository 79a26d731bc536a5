package helper

import (
	"fmt"
	"time"

	"horizon_booking/model"
)

// AverageSpeedKmph is the fixed speed used for all duration estimates.
const AverageSpeedKmph = 60.0

// searchTimeLayout matches the client's expected rendering, e.g.
// "Mon, Jan 6, 2025, 09:40 AM".
const searchTimeLayout = "Mon, Jan 2, 2006, 03:04 PM"

// ConvertToDate combines an HH:MM wall-clock string with a YYYY-MM-DD journey
// date into a concrete timestamp.
func ConvertToDate(timeString, journeyDate string) (time.Time, error) {
	clock, err := time.Parse("15:04", timeString)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid departure time %q: %w", timeString, err)
	}
	date, err := time.Parse("2006-01-02", journeyDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid journey date %q: %w", journeyDate, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}

// SegmentDistance sums distances for stations [from, to) preferring
// DistanceToNext and falling back to DistanceFromPrevious, missing as 0.
// Used for the requested segment's total distance.
func SegmentDistance(stations []model.Station, from, to int) float64 {
	var total float64
	for i := from; i < to; i++ {
		s := stations[i]
		switch {
		case s.DistanceToNext != nil:
			total += *s.DistanceToNext
		case s.DistanceFromPrevious != nil:
			total += *s.DistanceFromPrevious
		}
	}
	return total
}

// OffsetDistance sums distances for stations [from, to) preferring
// DistanceFromPrevious. Used when shifting schedule times along the route.
func OffsetDistance(stations []model.Station, from, to int) float64 {
	var total float64
	for i := from; i < to; i++ {
		s := stations[i]
		switch {
		case s.DistanceFromPrevious != nil:
			total += *s.DistanceFromPrevious
		case s.DistanceToNext != nil:
			total += *s.DistanceToNext
		}
	}
	return total
}

// TravelDuration converts a distance to travel time at the fixed average speed.
func TravelDuration(distanceKm float64) time.Duration {
	return time.Duration(distanceKm / AverageSpeedKmph * float64(time.Hour))
}

// EvaluateTrain decides whether a train serves the requested segment on the
// given date and, if so, computes its clock-adjusted departure and arrival.
// Returns false when the train is filtered out (no schedule coverage for the
// weekday, span not containing the segment, or unparseable schedule times).
func EvaluateTrain(route model.Route, train model.Train, schedule model.Schedule, sourceIndex, destinationIndex int, date string) (model.TrainSearchResult, bool) {
	journeyDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return model.TrainSearchResult{}, false
	}
	if !schedule.RunsOn(journeyDate.Weekday().String()) {
		return model.TrainSearchResult{}, false
	}

	trainSourceIndex := route.StationIndex(train.Source)
	trainDestinationIndex := route.StationIndex(train.Destination)

	// The train's own span must fully contain the requested segment.
	if trainSourceIndex < 0 || trainDestinationIndex < 0 ||
		trainSourceIndex > sourceIndex || trainDestinationIndex < destinationIndex {
		return model.TrainSearchResult{}, false
	}

	departureTime, err := ConvertToDate(schedule.DepartureTime, date)
	if err != nil {
		return model.TrainSearchResult{}, false
	}

	// Shift the scheduled departure by the travel time from the train's own
	// origin to the requested boarding point, then onward across the segment.
	toUserSource := OffsetDistance(route.Stations, trainSourceIndex, sourceIndex)
	acrossSegment := OffsetDistance(route.Stations, sourceIndex, destinationIndex)

	adjustedDeparture := departureTime.Add(TravelDuration(toUserSource))
	arrivalAtDestination := adjustedDeparture.Add(TravelDuration(acrossSegment))

	segmentDistance := SegmentDistance(route.Stations, sourceIndex, destinationIndex)

	return model.TrainSearchResult{
		TrainName:                train.TrainName,
		TrainNumber:              train.TrainNumber,
		Source:                   train.Source,
		Destination:              train.Destination,
		DepartureTime:            schedule.DepartureTime,
		AdjustedDepartureTime:    adjustedDeparture.Format(searchTimeLayout),
		ArrivalTimeAtDestination: arrivalAtDestination.Format(searchTimeLayout),
		OperatingDays:            schedule.OperatingDays,
		Compartments:             train.Compartments,
		Quotas:                   train.Quotas,
		Status:                   train.Status,
		EstimatedTime:            segmentDistance / AverageSpeedKmph,
		TotalDistance:            segmentDistance,
	}, true
}

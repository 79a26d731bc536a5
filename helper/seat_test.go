package helper

import (
	"testing"

	"horizon_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatLabel(t *testing.T) {
	assert.Equal(t, "1A", SeatLabel(1))
	assert.Equal(t, "1F", SeatLabel(6))
	assert.Equal(t, "2A", SeatLabel(7))
	assert.Equal(t, "2F", SeatLabel(12))
	assert.Equal(t, "3A", SeatLabel(13))
	assert.Equal(t, "12D", SeatLabel(70))
}

func TestGenerateSeats(t *testing.T) {
	seats := GenerateSeats(14)
	require.Len(t, seats, 14)

	labels := make(map[string]bool)
	for _, s := range seats {
		assert.True(t, s.IsAvailable)
		labels[s.SeatNumber] = true
	}
	assert.Len(t, labels, 14, "labels must be distinct")
	assert.Equal(t, "1A", seats[0].SeatNumber)
	assert.Equal(t, "3B", seats[13].SeatNumber)
}

func newCompartment(total int) *model.Compartment {
	return &model.Compartment{
		CompartmentType: model.Sleeper,
		TotalSeats:      total,
		AvailableSeats:  total,
		Seats:           GenerateSeats(total),
	}
}

func passengers(n int) []model.PassengerInput {
	ps := make([]model.PassengerInput, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, model.PassengerInput{Name: "Passenger", Age: 30, Gender: "Female"})
	}
	return ps
}

func TestAssignSeatsFirstFit(t *testing.T) {
	c := newCompartment(6)

	assigned, claimed, err := AssignSeats(c, passengers(3))
	require.NoError(t, err)
	require.Len(t, assigned, 3)
	require.Len(t, claimed, 3)

	assert.Equal(t, "1A", assigned[0].SeatNumber)
	assert.Equal(t, "1B", assigned[1].SeatNumber)
	assert.Equal(t, "1C", assigned[2].SeatNumber)

	for _, s := range claimed {
		assert.False(t, s.IsAvailable)
	}
	assert.True(t, c.Seats[3].IsAvailable)
}

func TestAssignSeatsSkipsTakenSeats(t *testing.T) {
	c := newCompartment(6)
	c.Seats[0].IsAvailable = false
	c.Seats[2].IsAvailable = false

	assigned, _, err := AssignSeats(c, passengers(2))
	require.NoError(t, err)
	assert.Equal(t, "1B", assigned[0].SeatNumber)
	assert.Equal(t, "1D", assigned[1].SeatNumber)
}

func TestAssignSeatsDistinctLabels(t *testing.T) {
	c := newCompartment(12)

	assigned, _, err := AssignSeats(c, passengers(12))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, p := range assigned {
		assert.False(t, seen[p.SeatNumber], "seat %s assigned twice", p.SeatNumber)
		seen[p.SeatNumber] = true
	}

	remaining := 0
	for _, s := range c.Seats {
		if s.IsAvailable {
			remaining++
		}
	}
	assert.Zero(t, remaining)
}

func TestAssignSeatsOverbooking(t *testing.T) {
	c := newCompartment(2)

	_, _, err := AssignSeats(c, passengers(3))
	assert.Error(t, err)
}

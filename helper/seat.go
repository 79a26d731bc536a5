package helper

import (
	"fmt"

	"horizon_booking/model"
)

const seatsPerRow = 6

// SeatLabel maps a 1-based seat index to its label: row ceil(i/6), column
// cycling A..F. Seat 7 is "2A", seat 12 is "2F".
func SeatLabel(i int) string {
	row := (i + seatsPerRow - 1) / seatsPerRow
	col := rune('A' + (i-1)%seatsPerRow)
	return fmt.Sprintf("%d%c", row, col)
}

// GenerateSeats builds the seat pool for a new compartment, all available.
func GenerateSeats(totalSeats int) []model.Seat {
	seats := make([]model.Seat, 0, totalSeats)
	for i := 1; i <= totalSeats; i++ {
		seats = append(seats, model.Seat{
			SeatNumber:  SeatLabel(i),
			IsAvailable: true,
		})
	}
	return seats
}

// AssignSeats claims the first available seat for each passenger in order,
// flipping the seat unavailable and attaching its label. The compartment's
// seat slice is mutated in place; the returned seat pointers are the claimed
// rows the caller must persist.
func AssignSeats(compartment *model.Compartment, passengers []model.PassengerInput) ([]model.Passenger, []*model.Seat, error) {
	assigned := make([]model.Passenger, 0, len(passengers))
	claimed := make([]*model.Seat, 0, len(passengers))
	next := 0
	for _, p := range passengers {
		found := false
		for ; next < len(compartment.Seats); next++ {
			seat := &compartment.Seats[next]
			if seat.IsAvailable {
				seat.IsAvailable = false
				assigned = append(assigned, model.Passenger{
					Name:       p.Name,
					Age:        p.Age,
					Gender:     p.Gender,
					SeatNumber: seat.SeatNumber,
				})
				claimed = append(claimed, seat)
				found = true
				next++
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("no available seat left for passenger %q", p.Name)
		}
	}
	return assigned, claimed, nil
}

package helper

import (
	"math"

	"horizon_booking/model"
)

// Per-class base fares in rupees, matching what the booking page displays.
var baseFares = map[model.CompartmentType]float64{
	model.FirstAC:  1580,
	model.SecondAC: 1050,
	model.ThirdAC:  550,
	model.Sleeper:  100,
	model.General:  30,
}

const (
	gstRate       = 0.18
	perKmRate     = 1.0
	FareTolerance = 1.0 // rupees
)

func BaseFare(ct model.CompartmentType) float64 {
	return baseFares[ct]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeFare recomputes the authoritative price breakdown for a segment:
// per-seat fare is the class base plus one rupee per kilometre, GST is a flat
// 18% surcharge on the base across all passengers.
func ComputeFare(ct model.CompartmentType, distanceKm float64, passengers int) model.PriceBreakdown {
	perSeat := BaseFare(ct) + distanceKm*perKmRate
	base := round2(perSeat * float64(passengers))
	return model.PriceBreakdown{
		Base:  base,
		GST:   round2(base * gstRate),
		Total: round2(base * (1 + gstRate)),
	}
}

// FareMatches accepts a client-submitted total when it is within
// FareTolerance of the recomputed one.
func FareMatches(submitted, computed float64) bool {
	return math.Abs(submitted-computed) <= FareTolerance
}

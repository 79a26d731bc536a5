package model

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIntent() BookingIntent {
	return BookingIntent{
		UserId:          1,
		TrainNumber:     "12001",
		CompartmentType: Sleeper,
		PassengerDetails: []PassengerInput{
			{Name: "Asha", Age: 30, Gender: "Female"},
		},
		JourneyDate: "2025-03-15",
		Price:       PriceBreakdown{Base: 400, GST: 72, Total: 472},
		FromCity:    "Agra",
		ToCity:      "Bhopal",
	}
}

func TestBookingIntentValidation(t *testing.T) {
	v := validator.New()

	require.NoError(t, v.Struct(validIntent()))

	// The booking cities feed the server-side fare recompute, so an intent
	// without them must never pass validation.
	intent := validIntent()
	intent.FromCity = ""
	intent.ToCity = ""
	assert.Error(t, v.Struct(intent))

	intent = validIntent()
	intent.FromCity = ""
	assert.Error(t, v.Struct(intent))

	intent = validIntent()
	intent.ToCity = ""
	assert.Error(t, v.Struct(intent))

	intent = validIntent()
	intent.CompartmentType = "4AC"
	assert.Error(t, v.Struct(intent))

	intent = validIntent()
	intent.PassengerDetails = nil
	assert.Error(t, v.Struct(intent))
}

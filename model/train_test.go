package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainCompartmentLookup(t *testing.T) {
	train := Train{
		Compartments: []Compartment{
			{CompartmentType: Sleeper, TotalSeats: 72},
			{CompartmentType: ThirdAC, TotalSeats: 64},
		},
	}

	comp := train.Compartment(ThirdAC)
	require.NotNil(t, comp)
	assert.Equal(t, 64, comp.TotalSeats)

	// Pointer into the train's own slice, not a copy.
	comp.AvailableSeats = 10
	assert.Equal(t, 10, train.Compartments[1].AvailableSeats)

	assert.Nil(t, train.Compartment(FirstAC))
}

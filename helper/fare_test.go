package helper

import (
	"testing"

	"horizon_booking/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeFare(t *testing.T) {
	// Sleeper base 100 + 100 km at 1 rupee/km, two passengers.
	breakdown := ComputeFare(model.Sleeper, 100, 2)
	assert.Equal(t, 400.0, breakdown.Base)
	assert.Equal(t, 72.0, breakdown.GST)
	assert.Equal(t, 472.0, breakdown.Total)
}

func TestComputeFarePerClass(t *testing.T) {
	tests := []struct {
		class model.CompartmentType
		base  float64
	}{
		{model.FirstAC, 1580},
		{model.SecondAC, 1050},
		{model.ThirdAC, 550},
		{model.Sleeper, 100},
		{model.General, 30},
	}
	for _, tt := range tests {
		breakdown := ComputeFare(tt.class, 50, 1)
		assert.Equal(t, tt.base+50, breakdown.Base, "class %s", tt.class)
	}
}

func TestComputeFareTotalIncludesGst(t *testing.T) {
	breakdown := ComputeFare(model.ThirdAC, 320, 3)
	assert.InDelta(t, breakdown.Base*1.18, breakdown.Total, 0.01)
	assert.InDelta(t, breakdown.Base+breakdown.GST, breakdown.Total, 0.01)
}

func TestFareMatches(t *testing.T) {
	assert.True(t, FareMatches(472.0, 472.0))
	assert.True(t, FareMatches(471.2, 472.0))
	assert.True(t, FareMatches(473.0, 472.0))
	assert.False(t, FareMatches(474.5, 472.0))
	assert.False(t, FareMatches(0, 472.0))
}

package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomDate(t *testing.T) {
	d, err := ParseCustomDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", d.String())

	d, err = ParseCustomDate("2025-03-15T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", d.String())

	_, err = ParseCustomDate("15/03/2025")
	assert.Error(t, err)
}

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-15"`), &d))
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-15"`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	out, err = json.Marshal(CustomDate{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestCustomDateScan(t *testing.T) {
	var d CustomDate
	require.NoError(t, d.Scan("2025-03-15"))
	assert.Equal(t, "2025-03-15", d.String())

	require.NoError(t, d.Scan(time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-03-16", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestCustomDateValue(t *testing.T) {
	d := NewCustomDate(time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC))
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", v)

	v, err = CustomDate{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

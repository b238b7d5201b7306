package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDaysFromJSON(t *testing.T) {
	days, err := DaysFromJSON(datatypes.JSON(`[1,3,5]`))
	require.NoError(t, err)
	require.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, days)
}

func TestDaysFromJSON_RejectsOutOfRange(t *testing.T) {
	_, err := DaysFromJSON(datatypes.JSON(`[1,7]`))
	require.Error(t, err)
}

func TestDaysToJSON_RoundTrip(t *testing.T) {
	raw := DaysToJSON([]time.Weekday{time.Tuesday, time.Thursday})
	days, err := DaysFromJSON(raw)
	require.NoError(t, err)
	require.Equal(t, []time.Weekday{time.Tuesday, time.Thursday}, days)
}

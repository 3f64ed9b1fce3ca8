package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stravasync/pkg/api"
)

func TestFromSummary(t *testing.T) {
	cadence := 74.0
	a := FromSummary(api.SummaryActivity{
		ID:                 42,
		Name:               "Lunch Run",
		SportType:          "Run",
		StartDateLocal:     "2026-02-07T12:00:00Z",
		Distance:           5000,
		MovingTime:         1500,
		TotalElevationGain: 10,
		AverageCadence:     &cadence,
	})

	assert.Equal(t, int64(42), a.ID)
	assert.Equal(t, "42", a.IDString())
	assert.Equal(t, "Run", a.SportType)
	assert.Equal(t, 5000.0, a.DistanceMeters)
	require.NotNil(t, a.AverageCadence)
	assert.Equal(t, 74.0, *a.AverageCadence)
}

func TestFromSummary_TypeFallback(t *testing.T) {
	// Старые записи имеют только устаревшее поле type
	a := FromSummary(api.SummaryActivity{ID: 1, Type: "Ride"})

	assert.Equal(t, "Ride", a.SportType)
}

func TestIsRunning(t *testing.T) {
	assert.True(t, (&Activity{SportType: "Run"}).IsRunning())
	assert.True(t, (&Activity{SportType: "TrailRun"}).IsRunning())
	assert.True(t, (&Activity{SportType: "VirtualRun"}).IsRunning())
	assert.False(t, (&Activity{SportType: "Ride"}).IsRunning())
	assert.False(t, (&Activity{SportType: "WeightTraining"}).IsRunning())
}

func TestApplyDetail(t *testing.T) {
	a := &Activity{ID: 1}
	rpe := 7.0
	hr := 148.0

	a.ApplyDetail(&api.DetailedActivity{
		PerceivedExertion: &rpe,
		SplitsMetric: []api.SplitMetric{
			{Split: 1, Distance: 1000, MovingTime: 330, ElevationDifference: 12, AverageHeartrate: &hr},
		},
	})

	require.NotNil(t, a.PerceivedExertion)
	assert.Equal(t, 7.0, *a.PerceivedExertion)
	require.Len(t, a.Splits, 1)
	assert.Equal(t, 1, a.Splits[0].Index)
	assert.Equal(t, 330, a.Splits[0].MovingTimeSec)
}

func TestApplyDetail_Nil(t *testing.T) {
	a := &Activity{ID: 1}
	a.ApplyDetail(nil)

	assert.Nil(t, a.PerceivedExertion)
	assert.Empty(t, a.Splits)
}

func TestApplyZones(t *testing.T) {
	a := &Activity{ID: 1}

	a.ApplyZones([]api.ActivityZone{
		{
			Type: "heartrate",
			DistributionBuckets: []api.ZoneBucket{
				{Min: 0, Max: 120, Time: 60},
				{Min: 120, Max: -1, Time: 30},
			},
		},
	})

	require.Len(t, a.Zones, 1)
	require.Len(t, a.Zones[0].Buckets, 2)
	assert.False(t, a.Zones[0].Buckets[0].OpenTop)
	// Max == -1 кодирует открытую сверху корзину
	assert.True(t, a.Zones[0].Buckets[1].OpenTop)
}

package projection

import (
	"math"
	"testing"

	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(label string, work, home float64) models.ComparisonRow {
	r := models.NewComparisonRow(label, label)
	r.WorkMinutes = work
	r.HomeMinutes = home
	return r
}

func TestSharedMaximum(t *testing.T) {
	nan := math.NaN()

	assert.Equal(t, 0.0, SharedMaximum(nil))
	assert.Equal(t, 40.0, SharedMaximum([]models.ComparisonRow{row("a", 10, 5), row("b", 40, nan)}))
	assert.Equal(t, 8.0, SharedMaximum([]models.ComparisonRow{row("a", nan, 8), row("b", math.Inf(1), nan)}))
}

func TestProject_SharedMaximumScaling(t *testing.T) {
	rows := []models.ComparisonRow{row("a", 10, 5), row("b", 40, math.NaN())}

	view := Project(rows)

	assert.Equal(t, 40.0, view.MaxMinutes)
	require.Len(t, view.Rows, 2)
	assert.InDelta(t, 0.25, view.Rows[0].WorkScale, 1e-9)
	assert.InDelta(t, 0.125, view.Rows[0].HomeScale, 1e-9)
	assert.InDelta(t, 1.0, view.Rows[1].WorkScale, 1e-9)
	assert.Equal(t, 0.0, view.Rows[1].HomeScale)
	assert.Equal(t, 1, view.Rows[0].Rank)
	assert.Equal(t, 2, view.Rows[1].Rank)
	assert.Equal(t, "15 min", view.Rows[0].TotalTime)
	assert.Empty(t, view.Rows[1].TotalTime)
	assert.Equal(t, BandNone, view.Rows[1].HomeBand)
}

func TestProject_Empty(t *testing.T) {
	view := Project(nil)
	assert.Equal(t, 0.0, view.MaxMinutes)
	assert.NotNil(t, view.Rows)
	assert.Empty(t, view.Rows)
}

func TestScale_ZeroMaximum(t *testing.T) {
	assert.Equal(t, 0.0, Scale(10, 0))
	assert.Equal(t, 0.0, Scale(math.NaN(), 10))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		minutes float64
		want    Band
	}{
		{0, BandGood},
		{19.9, BandGood},
		{20, BandMedium},
		{40, BandMedium},
		{40.1, BandBad},
		{95, BandBad},
		{math.NaN(), BandNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.minutes), "minutes=%v", tt.minutes)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{45, "45 min"},
		{44.6, "45 min"},
		{65, "1h 5 min"},
		{120, "2h"},
		{-3, "0 min"},
		{math.NaN(), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
	}
}

func TestFormatKilometers(t *testing.T) {
	assert.Equal(t, "2.5 km", FormatKilometers(2500))
	assert.Equal(t, "9.9 km", FormatKilometers(9940))
	assert.Equal(t, "12 km", FormatKilometers(12400))
	assert.Equal(t, "", FormatKilometers(math.NaN()))
}

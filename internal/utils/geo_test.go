package utils

import (
	"testing"

	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEquirectangularMeters(t *testing.T) {
	tests := []struct {
		name      string
		a, b      models.LocationPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			a:         models.LocationPoint{Lat: 52.2297, Lng: 21.0122},
			b:         models.LocationPoint{Lat: 52.2297, Lng: 21.0122},
			expected:  0,
			tolerance: 0.001,
		},
		{
			name:      "Short hop in Warsaw",
			a:         models.LocationPoint{Lat: 52.0, Lng: 21.0},
			b:         models.LocationPoint{Lat: 52.01, Lng: 21.01},
			expected:  1305,
			tolerance: 5,
		},
		{
			name:      "One degree of latitude",
			a:         models.LocationPoint{Lat: 0, Lng: 0},
			b:         models.LocationPoint{Lat: 1, Lng: 0},
			expected:  111195,
			tolerance: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EquirectangularMeters(tt.a, tt.b), tt.tolerance)
		})
	}
}

func TestEncodeLocation(t *testing.T) {
	p := models.LocationPoint{Lat: 52.2297, Lng: 21.0122}

	hash := EncodeLocation(p, CacheKeyPrecision)
	assert.Len(t, hash, CacheKeyPrecision)
	assert.Equal(t, hash, EncodeLocation(p, CacheKeyPrecision))

	// about 1 m apart, inside one 8 character cell
	nearby := models.LocationPoint{Lat: 52.22971, Lng: 21.01221}
	assert.Equal(t, EncodeLocation(p, 8), EncodeLocation(nearby, 8))
	assert.NotEqual(t, hash, EncodeLocation(nearby, CacheKeyPrecision))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 60.0, Clamp(10, 60, 7200))
	assert.Equal(t, 7200.0, Clamp(9000, 60, 7200))
	assert.Equal(t, 1800.0, Clamp(1800, 60, 7200))
}

package routing

import (
	"testing"

	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode     models.TransportMode
		expected models.TransportMode
	}{
		{models.ModeCar, models.ModeCar},
		{models.ModeBike, models.ModeBike},
		{models.ModeWalk, models.ModeWalk},
		{models.ModeTransit, models.ModeCar},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.expected, EffectiveMode(tt.mode))
		})
	}
}

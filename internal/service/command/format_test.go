package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feretizpina/uber-slack/internal/domain/ride"
)

// TestFormatArrival tests the integer-minute ETA wording
func TestFormatArrival(t *testing.T) {
	tests := []struct {
		name       string
		etaSeconds int
		expected   string
	}{
		{
			name:       "zero seconds",
			etaSeconds: 0,
			expected:   "Thanks! We are looking for a driver and we expect them to arrive very soon.",
		},
		{
			name:       "under a minute rounds down",
			etaSeconds: 59,
			expected:   "Thanks! We are looking for a driver and we expect them to arrive very soon.",
		},
		{
			name:       "exactly one minute",
			etaSeconds: 60,
			expected:   "Thanks! We are looking for a driver and we expect them to arrive in 1 minute.",
		},
		{
			name:       "two minutes",
			etaSeconds: 125,
			expected:   "Thanks! We are looking for a driver and we expect them to arrive in 2 minutes.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatArrival(tt.etaSeconds))
		})
	}
}

// TestFormatEstimate tests the quote sentence and its surge note
func TestFormatEstimate(t *testing.T) {
	tests := []struct {
		name     string
		estimate ride.Estimate
		expected string
	}{
		{
			name: "no surge",
			estimate: ride.Estimate{
				DurationSeconds: 600,
				DisplayCost:     "$10-12",
				SurgeMultiplier: 1,
			},
			expected: "Let's see... That trip would take about 10 minutes and cost $10-12. No surge currently in effect.",
		},
		{
			name: "one minute singular",
			estimate: ride.Estimate{
				DurationSeconds: 80,
				DisplayCost:     "$5",
				SurgeMultiplier: 1,
			},
			expected: "Let's see... That trip would take about one minute and cost $5. No surge currently in effect.",
		},
		{
			name: "surge in effect",
			estimate: ride.Estimate{
				DurationSeconds: 1200,
				DisplayCost:     "$30-38",
				SurgeMultiplier: 1.8,
			},
			expected: "Let's see... That trip would take about 20 minutes and cost $30-38. Includes current surge at 1.8.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatEstimate(&tt.estimate))
		})
	}
}
